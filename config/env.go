package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv 有 .env 就读进来；已经存在的环境变量优先
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
}
