package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"

	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

type Config struct {
	OrganizationName string
	AppName          string
	Env              string
	AppPort          string
	AppUrl           string
	DBUrl            string
	RSAPrivateKey    *rsa.PrivateKey
	RSAPublicKey     *rsa.PublicKey
	TokenExpiry      time.Duration

	// Optional integrations; an empty value disables the feature.
	SendgridAPIKey   string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromPhone  string
	GMapsAPIKey      string
	S3Bucket         string
	AWSRegion        string

	ViewRollupSchedule string

	LDFlag_SeedDbWithTestData    bool
	LDFlag_CORSHighSecurity      bool
	LDFlag_NotifyDealerOnInquiry bool
	LDFlag_SendgridFromEmail     string
	LDFlag_SendgridSandboxMode   bool
}

const (
	OrganizationName    = utils.OrganizationName
	LDConnectionTimeout = 5 * time.Second

	DefaultTokenExpiry        = 24 * time.Hour
	DefaultViewRollupSchedule = "0 3 * * *"
)

var (
	AppName             string
	LDServerContextKey  = "plotmap-service"
	LDServerContextKind = "service"
)

func LoadConfig() *Config {
	if AppName == "" {
		AppName = "plotmap-service"
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	env := os.Getenv("ENV")
	if env == "" {
		utils.Logger.Fatal("ENV env var is missing")
	}
	appUrl := os.Getenv("APP_URL_FROM_ANYWHERE")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL_FROM_ANYWHERE env var is missing")
	}
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}

	privKey, err := parsePrivateKey(os.Getenv("RSA_PRIVATE_KEY_BASE64"))
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA private key")
	}
	pubKey, err := parsePublicKey(os.Getenv("RSA_PUBLIC_KEY_BASE64"))
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}

	tokenExpiry := DefaultTokenExpiry
	if v := os.Getenv("TOKEN_EXPIRY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			utils.Logger.Fatalf("TOKEN_EXPIRY invalid: %q", v)
		}
		tokenExpiry = d
	}

	rollup := os.Getenv("VIEW_ROLLUP_CRON")
	if rollup == "" {
		rollup = DefaultViewRollupSchedule
	}

	flags := loadFlags(os.Getenv("LD_SDK_KEY"))

	return &Config{
		OrganizationName:             OrganizationName,
		AppName:                      AppName,
		Env:                          env,
		AppPort:                      appPort,
		AppUrl:                       appUrl,
		DBUrl:                        dbURL,
		RSAPrivateKey:                privKey,
		RSAPublicKey:                 pubKey,
		TokenExpiry:                  tokenExpiry,
		SendgridAPIKey:               os.Getenv("SENDGRID_API_KEY"),
		TwilioAccountSID:             os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:              os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:              os.Getenv("TWILIO_FROM_PHONE"),
		GMapsAPIKey:                  os.Getenv("GMAPS_API_KEY"),
		S3Bucket:                     os.Getenv("S3_BUCKET"),
		AWSRegion:                    os.Getenv("AWS_REGION"),
		ViewRollupSchedule:           rollup,
		LDFlag_SeedDbWithTestData:    flags.seedDbWithTestData,
		LDFlag_CORSHighSecurity:      flags.corsHighSecurity,
		LDFlag_NotifyDealerOnInquiry: flags.notifyDealerOnInquiry,
		LDFlag_SendgridFromEmail:     flags.sendgridFromEmail,
		LDFlag_SendgridSandboxMode:   flags.sendgridSandboxMode,
	}
}

func (c *Config) Close() {}

// LoadDBUrl is all the seed command needs.
func LoadDBUrl() string {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}
	return dbURL
}

func parsePrivateKey(b64 string) (*rsa.PrivateKey, error) {
	pem, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}
	return jwt.ParseRSAPrivateKeyFromPEM(pem)
}

func parsePublicKey(b64 string) (*rsa.PublicKey, error) {
	pem, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}
	return jwt.ParseRSAPublicKeyFromPEM(pem)
}

type flagSnapshot struct {
	seedDbWithTestData    bool
	corsHighSecurity      bool
	notifyDealerOnInquiry bool
	sendgridFromEmail     string
	sendgridSandboxMode   bool
}

// loadFlags snapshots the feature flags once at startup. Without an SDK key
// the client runs offline and every flag takes its default.
func loadFlags(sdkKey string) flagSnapshot {
	ldCfg := ld.Config{}
	if sdkKey == "" {
		utils.Logger.Warn("LD_SDK_KEY not set; feature flags use defaults")
		ldCfg.Offline = true
	}
	ldClient, err := ld.MakeCustomClient(sdkKey, ldCfg, LDConnectionTimeout)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to create LaunchDarkly client")
	}
	defer ldClient.Close()

	ctx := ldcontext.NewWithKind(ldcontext.Kind(LDServerContextKind), LDServerContextKey)

	boolFlag := func(key string, def bool) bool {
		v, err := ldClient.BoolVariation(key, ctx, def)
		if err != nil {
			utils.Logger.WithError(err).Warnf("Error retrieving %s flag; using default", key)
			return def
		}
		utils.Logger.Debugf("%s flag: %t", key, v)
		return v
	}

	snap := flagSnapshot{
		seedDbWithTestData:    boolFlag("seed_db_with_test_data", false),
		corsHighSecurity:      boolFlag("cors_high_security", false),
		notifyDealerOnInquiry: boolFlag("notify_dealer_on_inquiry", true),
		sendgridSandboxMode:   boolFlag("sendgrid_sandbox_mode", false),
	}

	from, err := ldClient.StringVariation("sendgrid_from_email", ctx, "")
	if err != nil {
		utils.Logger.WithError(err).Warn("Error retrieving sendgrid_from_email flag")
	}
	if from == "" {
		from = "no-reply@royalpalmcity.pk" // Fallback
	}
	snap.sendgridFromEmail = from
	return snap
}
