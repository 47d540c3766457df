package util

import (
	"log"
	"os"
	"path/filepath"
)

func FailOnError(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s", msg, err)
	}
}

func LogIfErr(err error) {
	if err != nil {
		log.Printf("%s", err.Error())
	}
}

// GetRootDir is the base for relative file paths (oui cache, sheets, keys):
// APP_ROOT when set, else the working directory.
func GetRootDir() string {
	if root := os.Getenv("APP_ROOT"); root != "" {
		return root
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return filepath.Clean(wd)
}
