// config - источник загрузки конфигурации для friends-gateway.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const envProd = "prod"

type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HTTP       HTTPConfig       `yaml:"http"`
	Backend    BackendConfig    `yaml:"backend"`
	Endpoints  EndpointsConfig  `yaml:"endpoints"`
	Cookies    CookiesConfig    `yaml:"cookies"`
	Navigation NavigationConfig `yaml:"navigation"`
	Cache      CacheConfig      `yaml:"cache"`
	Timeouts   TimeoutConfig    `yaml:"timeouts"`
}

// Production - true для prod-окружения (secure-cookie, без dev-диагностики).
func (c Config) Production() bool { return c.Env == envProd }

// SecureCookies - secure-флаг включается явно или автоматически в prod.
func (c Config) SecureCookies() bool { return c.Cookies.Secure || c.Production() }

// TimeoutConfig - таймаут обработки входящего запроса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"15s"`
}

// HTTPConfig - публичный REST-сервер шлюза.
type HTTPConfig struct {
	Host     string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"HTTP_PORT" env-default:"50095"`
	BasePath string `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:""`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// BackendConfig - удалённый REST-бэкенд.
type BackendConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"BACKEND_BASE_URL"   env-default:"http://localhost:8081"`
	Timeout   time.Duration `yaml:"timeout"    env:"BACKEND_TIMEOUT"    env-default:"30s"`
	UserAgent string        `yaml:"user_agent" env:"BACKEND_USER_AGENT" env-default:"friends-gateway"`
}

// EndpointsConfig - пути бэкенда. Менялись от версии к версии, поэтому это конфиг, а не протокол.
type EndpointsConfig struct {
	Friends FriendsEndpoints `yaml:"friends"`
	Chat    ChatEndpoints    `yaml:"chat"`
	Groups  GroupsEndpoints  `yaml:"groups"`
	Auth    AuthEndpoints    `yaml:"auth"`
}

type FriendsEndpoints struct {
	List   string `yaml:"list"   env:"EP_FRIENDS_LIST"   env-default:"/friends/list"`
	Search string `yaml:"search" env:"EP_FRIENDS_SEARCH" env-default:"/friends/search"`
	Invite string `yaml:"invite" env:"EP_FRIENDS_INVITE" env-default:"/friends/invite"`
	Create string `yaml:"create" env:"EP_FRIENDS_CREATE" env-default:"/friends/create"`
	Accept string `yaml:"accept" env:"EP_FRIENDS_ACCEPT" env-default:"/friends/accept"`
	Ignore string `yaml:"ignore" env:"EP_FRIENDS_IGNORE" env-default:"/friends/ignore"`
	Delete string `yaml:"delete" env:"EP_FRIENDS_DELETE" env-default:"/friends/delete"`
}

type ChatEndpoints struct {
	Create   string `yaml:"create"   env:"EP_CHAT_CREATE"   env-default:"/chat/create"`
	List     string `yaml:"list"     env:"EP_CHAT_LIST"     env-default:"/chat/list"`
	Messages string `yaml:"messages" env:"EP_CHAT_MESSAGES" env-default:"/chat/messages"`
	Send     string `yaml:"send"     env:"EP_CHAT_SEND"     env-default:"/chat/send"`
}

type GroupsEndpoints struct {
	List         string `yaml:"list"          env:"EP_GROUPS_LIST"          env-default:"/groups/list"`
	Get          string `yaml:"get"           env:"EP_GROUPS_GET"           env-default:"/groups/get"`
	Create       string `yaml:"create"        env:"EP_GROUPS_CREATE"        env-default:"/groups/create"`
	Update       string `yaml:"update"        env:"EP_GROUPS_UPDATE"        env-default:"/groups/update"`
	Delete       string `yaml:"delete"        env:"EP_GROUPS_DELETE"        env-default:"/groups/delete"`
	MemberAdd    string `yaml:"member_add"    env:"EP_GROUPS_MEMBER_ADD"    env-default:"/groups/member/add"`
	MemberRemove string `yaml:"member_remove" env:"EP_GROUPS_MEMBER_REMOVE" env-default:"/groups/member/remove"`
}

type AuthEndpoints struct {
	Login  string `yaml:"login"  env:"EP_AUTH_LOGIN"  env-default:"/login"`
	Signup string `yaml:"signup" env:"EP_AUTH_SIGNUP" env-default:"/signup"`
	Verify string `yaml:"verify" env:"EP_AUTH_VERIFY" env-default:"/login/auth"`
	Logout string `yaml:"logout" env:"EP_AUTH_LOGOUT" env-default:"/logout"`
	Me     string `yaml:"me"     env:"EP_AUTH_ME"     env-default:"/me"`
}

// CredentialPaths - эндпоинты входа/выхода; 401 на них означает неверные
// учётные данные, а не истёкшую сессию. /me сюда не входит.
func (a AuthEndpoints) CredentialPaths() []string {
	return []string{a.Login, a.Signup, a.Verify, a.Logout}
}

// CookiesConfig - имена и атрибуты cookie с учётными данными.
type CookiesConfig struct {
	Login   string        `yaml:"login"   env:"COOKIE_LOGIN"   env-default:"login"`
	Token   string        `yaml:"token"   env:"COOKIE_TOKEN"   env-default:"token"`
	Profile string        `yaml:"profile" env:"COOKIE_PROFILE" env-default:"profile"`
	MaxAge  time.Duration `yaml:"max_age" env:"COOKIE_MAX_AGE" env-default:"168h"`
	Secure  bool          `yaml:"secure"  env:"COOKIE_SECURE"  env-default:"false"`
	Path    string        `yaml:"path"    env:"COOKIE_PATH"    env-default:"/"`
}

// NavigationConfig - адреса соседних микро-приложений для полностраничных переходов.
type NavigationConfig struct {
	SignInURL string `yaml:"sign_in_url" env:"AUTH_LOGIN_URL" env-default:"/login"`
	ChatURL   string `yaml:"chat_url"    env:"APP_CHAT_URL"   env-default:"/chat/"`
	Origin    string `yaml:"origin"      env:"APP_ORIGIN"     env-default:"http://localhost"`
}

// CacheConfig - кэш результатов поиска пользователей. Пустой RedisURL отключает кэш.
type CacheConfig struct {
	RedisURL string        `yaml:"redis_url" env:"CACHE_REDIS_URL" env-default:""`
	Prefix   string        `yaml:"prefix"    env:"CACHE_PREFIX"    env-default:"friends:search:"`
	TTL      time.Duration `yaml:"ttl"       env:"CACHE_TTL"       env-default:"30s"`
}

// MustLoad - паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) --config
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) только ENV
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
