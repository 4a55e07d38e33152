package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	DatabaseURL string `env:"DATABASE_URL"`
	// target base for QR code links, e.g. https://shop.example.com
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	JWT     JWT     `envPrefix:"JWT_"`
	Redis   Redis   `envPrefix:"REDIS_"`
	Metrics Metrics `envPrefix:"METRICS_"`
}

type JWT struct {
	Secret      string `env:"SECRET"`
	ExpiryHours int    `env:"EXPIRY_HOURS" envDefault:"24"`
}

type Redis struct {
	// empty address disables the dashboard cache
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type Metrics struct {
	Namespace string `env:"NAMESPACE" envDefault:"shopease"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

func (e Environment) IsDevelopment() bool {
	return e.Name == "development"
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
