package config

import "os"

type GGAuthConfig struct {
	ForceCampusDomain bool
	CampusDomain      string
}

func NewGGAuthConfig() *GGAuthConfig {
	domain := os.Getenv("CAMPUS_EMAIL_DOMAIN")
	return &GGAuthConfig{
		ForceCampusDomain: domain != "",
		CampusDomain:      domain,
	}
}
