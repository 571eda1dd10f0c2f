package pkg

import (
	"log"
	"os"
)

// InitLog sends the standard logger to dest. The terminal belongs to the
// UI, so nothing may be logged to stdout while it runs.
func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
