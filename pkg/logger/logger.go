package logger

import (
	"log"
	"os"
)

func Println(v ...any) {
	env := os.Getenv("enviroment")
	if env != "production" {
		log.Println(v...)
	}
}

func Printf(format string, v ...any) {
	env := os.Getenv("enviroment")
	if env != "production" {
		log.Printf(format, v...)
	}
}

// Debugf is the diagnostic level used for skipped lines in the output
// parsers. Enabled only when LOG_LEVEL=debug.
func Debugf(format string, v ...any) {
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.Printf("[debug] "+format, v...)
	}
}

func Errorf(format string, v ...any) {
	log.Printf("[error] "+format, v...)
}
