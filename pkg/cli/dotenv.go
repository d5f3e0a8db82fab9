package cli

import "github.com/joho/godotenv"

// LoadDotEnv loads a .env file into the process environment. morphcli
// itself reads no settings from the environment: sigma is prompted for,
// and the worker count, log level and update repository are fixed in
// the code.
func LoadDotEnv(path string) error {
	return godotenv.Load(path)
}
