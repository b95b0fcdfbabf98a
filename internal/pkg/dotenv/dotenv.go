package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the .env file into the process environment and applies the
// -port flag on top of it, so a local run can override PORT without
// editing the file.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "HTTP server port (overrides PORT from the environment)")
	flag.Parse()

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("set PORT: %w", err)
		}
	}
	return nil
}
