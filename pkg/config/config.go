package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de backend soportados. La selección es de despliegue, no de
// runtime: main elige exactamente un adaptador y el resto de la app solo
// conoce la fachada.
const (
	BackendFirestore = "firestore"
	BackendREST      = "rest"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Backend   BackendConfig
	Firestore FirestoreConfig
	REST      RESTConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// BackendConfig selección del backend de persistencia.
type BackendConfig struct {
	Driver string // firestore | rest
}

// Validate verifica que el driver sea uno de los soportados.
func (c BackendConfig) Validate() error {
	switch c.Driver {
	case BackendFirestore, BackendREST:
		return nil
	}
	return fmt.Errorf("BACKEND_DRIVER inválido: %q (esperado %s o %s)", c.Driver, BackendFirestore, BackendREST)
}

// FirestoreConfig configuración del document store.
type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string // vacío = credenciales por defecto del entorno
}

// RESTConfig configuración del backend REST remoto.
type RESTConfig struct {
	BaseURL string
	APIKey  string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, BACKEND_DRIVER, FIRESTORE_PROJECT_ID, REST_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "leadscope"),
		},
		Backend: BackendConfig{
			Driver: getString(v, "BACKEND_DRIVER", BackendFirestore),
		},
		Firestore: FirestoreConfig{
			ProjectID:       getString(v, "FIRESTORE_PROJECT_ID", ""),
			CredentialsFile: getString(v, "FIRESTORE_CREDENTIALS_FILE", ""),
		},
		REST: RESTConfig{
			BaseURL: getString(v, "REST_BASE_URL", "http://localhost:3001"),
			APIKey:  getString(v, "REST_API_KEY", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "leadscope"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	if err := cfg.Backend.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
