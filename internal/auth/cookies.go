package auth

import (
	"net/http"
	"net/url"
	"time"
)

const defaultMaxAge = 7 * 24 * time.Hour

// CookieJar - долговременное хранилище учётных данных (источник истины).
type CookieJar interface {
	Get(name string) (string, bool)
	Set(name, value string)
	Remove(name string)
}

// CookieNames - имена cookie с учётными данными и профилем.
type CookieNames struct {
	Login   string
	Token   string
	Profile string
}

func DefaultCookieNames() CookieNames {
	return CookieNames{Login: "login", Token: "token", Profile: "profile"}
}

// CookieOptions - атрибуты выставляемых cookie.
type CookieOptions struct {
	MaxAge   time.Duration
	Secure   bool
	SameSite http.SameSite
	Path     string
}

// DefaultCookieOptions: 7 дней, SameSite=Strict, Path=/; Secure включается в prod.
func DefaultCookieOptions() CookieOptions {
	return CookieOptions{
		MaxAge:   defaultMaxAge,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	}
}

func (o CookieOptions) withDefaults() CookieOptions {
	if o.MaxAge <= 0 {
		o.MaxAge = defaultMaxAge
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteStrictMode
	}
	if o.Path == "" {
		o.Path = "/"
	}

	return o
}

// HTTPJar читает cookie из входящего запроса и пишет Set-Cookie в ответ.
// Записи текущего запроса видны последующим Get через overlay.
type HTTPJar struct {
	r       *http.Request
	w       http.ResponseWriter
	opts    CookieOptions
	overlay map[string]*string
}

func NewHTTPJar(w http.ResponseWriter, r *http.Request, opts CookieOptions) *HTTPJar {
	return &HTTPJar{
		r:       r,
		w:       w,
		opts:    opts.withDefaults(),
		overlay: make(map[string]*string),
	}
}

func (j *HTTPJar) Get(name string) (string, bool) {
	if v, ok := j.overlay[name]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}

	c, err := j.r.Cookie(name)
	if err != nil {
		return "", false
	}

	if v, err := url.PathUnescape(c.Value); err == nil {
		return v, true
	}

	return c.Value, true
}

func (j *HTTPJar) Set(name, value string) {
	j.overlay[name] = &value

	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    url.PathEscape(value),
		Path:     j.opts.Path,
		MaxAge:   int(j.opts.MaxAge / time.Second),
		Expires:  time.Now().Add(j.opts.MaxAge).UTC(),
		Secure:   j.opts.Secure,
		SameSite: j.opts.SameSite,
	})
}

func (j *HTTPJar) Remove(name string) {
	j.overlay[name] = nil

	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     j.opts.Path,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		Secure:   j.opts.Secure,
		SameSite: j.opts.SameSite,
	})
}

// MemoryJar - CookieJar в памяти (тесты, фоновые вызовы без браузера).
type MemoryJar map[string]string

func (m MemoryJar) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func (m MemoryJar) Set(name, value string) { m[name] = value }
func (m MemoryJar) Remove(name string)     { delete(m, name) }
