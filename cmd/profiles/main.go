package main

import (
	"log"

	"github.com/avc-dev/counselor-profiles/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	// .env нужен только для локальной разработки, переменные окружения имеют приоритет
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
