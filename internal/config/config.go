package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address      string `env:"RUN_ADDRESS"   envDefault:"localhost:8080"`
	LogLvl       string `env:"LOG_LVL"       envDefault:"info"`
	StoreBackend string `env:"STORE_BACKEND" envDefault:"file"`
	StoreFile    string `env:"STORE_FILE"    envDefault:"db.json"`
	Database     string `env:"DATABASE_URI"  envDefault:""`

	HotWallet    string `env:"HOT_WALLET"`
	HotWalletKey string `env:"HOT_WALLET_KEY"`
	BscRPC       string `env:"BSC_RPC"`
	ArbRPC       string `env:"ARB_RPC"`

	OracleURL      string        `env:"ORACLE_URL"      envDefault:"https://api.coingecko.com/api/v3"`
	OracleTimeout  time.Duration `env:"ORACLE_TIMEOUT"  envDefault:"5s"`
	OracleFallback bool          `env:"ORACLE_FALLBACK" envDefault:"false"`
	ChainTimeout   time.Duration `env:"CHAIN_TIMEOUT"   envDefault:"15s"`

	AdminIDs     []string `env:"ADMIN_IDS"      envSeparator:","`
	TransportURL string   `env:"TRANSPORT_URL"`
	AuditChannel string   `env:"AUDIT_CHANNEL_ID"`
	JWTSecret    string   `env:"JWT_SECRET"     envDefault:"tukarbot-dev-secret"`

	MinBuyRp      int64   `env:"MIN_BUY_RP"      envDefault:"15000"`
	BuyFeePercent float64 `env:"BUY_FEE_PERCENT" envDefault:"2"`
	BuyFeeMinRp   int64   `env:"BUY_FEE_MIN_RP"  envDefault:"5000"`
	MinSellFeeRp  int64   `env:"MIN_SELL_FEE_RP" envDefault:"5000"`
	MinTopUpRp    int64   `env:"MIN_TOPUP_RP"    envDefault:"15000"`
	MinWithdrawRp int64   `env:"MIN_WITHDRAW_RP" envDefault:"15000"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN (postgres backend)")
	flag.StringVar(&cfg.StoreFile, "f", cfg.StoreFile, "ledger document path (file backend)")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	if cfg.OracleURL != "" && !strings.HasPrefix(cfg.OracleURL, "http://") && !strings.HasPrefix(cfg.OracleURL, "https://") {
		cfg.OracleURL = "https://" + cfg.OracleURL
	}

	return cfg
}

// TokenNetwork describes one deliverable asset. An empty Contract means the
// network's native coin.
type TokenNetwork struct {
	Contract string
	Decimals int
}

var tokenCatalogue = map[string]map[string]TokenNetwork{
	"USDT": {
		"BEP20": {Contract: "0x7193c21Ca1960b92FdCc92CFb918F337C7bd165e", Decimals: 18},
	},
	"ETH": {
		"ARB": {Contract: "", Decimals: 18},
	},
}

// PaymentMethods maps a top-up method to the transfer instruction shown to
// the user.
var PaymentMethods = map[string]string{
	"DANA":    "0812xxxx",
	"OVO":     "0813xxxx",
	"GOPAY":   "0814xxxx",
	"BCA":     "1234567890",
	"BRI":     "63727277",
	"MANDIRI": "637373737",
}

var WithdrawMethods = []string{"OVO", "DANA", "GOPAY", "BCA", "BRI", "MANDIRI"}

// CoingeckoIDs maps bot token symbols to oracle identifiers.
var CoingeckoIDs = map[string]string{
	"USDT": "tether",
	"ETH":  "ethereum",
}

// FallbackRatesRp is consulted only when ORACLE_FALLBACK is enabled.
var FallbackRatesRp = map[string]float64{
	"USDT": 16000,
}

func (c *Config) Token(token, network string) (TokenNetwork, bool) {
	nets, ok := tokenCatalogue[token]
	if !ok {
		return TokenNetwork{}, false
	}
	tn, ok := nets[network]
	return tn, ok
}

func (c *Config) Tokens() []string {
	tokens := make([]string, 0, len(tokenCatalogue))
	for t := range tokenCatalogue {
		tokens = append(tokens, t)
	}
	return tokens
}

func (c *Config) NetworksFor(token string) []string {
	nets := make([]string, 0, len(tokenCatalogue[token]))
	for n := range tokenCatalogue[token] {
		nets = append(nets, n)
	}
	return nets
}

func (c *Config) RPC(network string) (string, bool) {
	switch network {
	case "BEP20":
		return c.BscRPC, c.BscRPC != ""
	case "ARB":
		return c.ArbRPC, c.ArbRPC != ""
	}
	return "", false
}

func (c *Config) IsAdmin(id string) bool {
	for _, a := range c.AdminIDs {
		if a == id {
			return true
		}
	}
	return false
}
