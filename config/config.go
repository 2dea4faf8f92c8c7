// config/config.go
package config

import (
	"log"
	"os"
	"time"
)

var (
	Port          string
	MongoURI      string
	DBName        string
	JWTKey        []byte
	JWTExpiration time.Duration
	StripeKey     string
)

func LoadConfig() {
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}

	MongoURI = os.Getenv("MONGODB_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017"
	}

	DBName = os.Getenv("DB_NAME")
	if DBName == "" {
		DBName = "assetwiseDB"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = os.Getenv("ACCESS_TOKEN_SECRET")
	}
	if secret == "" {
		secret = "secret"
	}
	JWTKey = []byte(secret)

	expireStr := os.Getenv("JWT_EXPIRE")
	dur := 4 * time.Hour
	if expireStr != "" {
		var err error
		dur, err = time.ParseDuration(expireStr)
		if err != nil {
			log.Printf("Invalid JWT_EXPIRE: %s, using 4h", expireStr)
			dur = 4 * time.Hour
		}
	}
	JWTExpiration = dur

	StripeKey = os.Getenv("STRIPE_SECRET_KEY")
	if StripeKey == "" {
		log.Println("WARNING: STRIPE_SECRET_KEY not set, payment intents will fail")
	}
}
