package identity

type Config struct {
	Secret            string
	TokenTTLInMinutes int64 `yaml:"token_ttl_in_minutes"`
	BcryptCost        int   `yaml:"bcrypt_cost"`
}
