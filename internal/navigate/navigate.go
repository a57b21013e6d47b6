// navigate строит адреса полностраничных переходов в соседние
// микро-приложения (вход, чат).
package navigate

import (
	"fmt"
	"net/url"
	"strings"
)

// SignInURL - страница входа с параметром redirect=<returnTo>.
// Пустой returnTo оставляет base как есть.
func SignInURL(base, returnTo string) string {
	if returnTo == "" {
		return base
	}

	u, err := url.Parse(base)
	if err != nil {
		return base
	}

	q := u.Query()
	q.Set("redirect", returnTo)
	u.RawQuery = q.Encode()

	return u.String()
}

// ChatURL - адрес приложения чата с открытым чатом chatID.
// Относительный base разрешается от origin, завершающий "/" добавляется.
func ChatURL(base, origin, chatID string) (string, error) {
	const op = "internal/navigate/ChatURL"

	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%s: base: %w", op, err)
	}

	if !u.IsAbs() {
		o, err := url.Parse(origin)
		if err != nil || !o.IsAbs() {
			return "", fmt.Errorf("%s: origin %q is not absolute", op, origin)
		}
		u = o.ResolveReference(u)
	}

	if chatID != "" {
		q := u.Query()
		q.Set("chat", chatID)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
