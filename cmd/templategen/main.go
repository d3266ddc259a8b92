package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"siparis/adapters/excel"
)

func main() {
	dir := flag.String("dir", "./files", "directory to write the template into")
	name := flag.String("name", "siparis_template.xlsx", "template file name")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *dir, err)
	}

	path := filepath.Join(*dir, *name)
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}

	if err := excel.WriteTemplate(f); err != nil {
		f.Close()
		log.Fatalf("Failed to write template: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", path, err)
	}
	log.Printf("Wrote %s", path)
}
