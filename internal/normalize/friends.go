// normalize приводит ответы эндпоинта "список друзей" к единому виду.
//
// Форма ответа менялась между версиями бэкенда:
//   - голый массив друзей;
//   - {friends, invites} (+ sent/received);
//   - {data: {...}}, {items: ...}, {results: ...} с любой из форм выше внутри.
//
// Нормализатор никогда не возвращает ошибку: неизвестная форма даёт пустые
// списки и одну диагностическую запись в лог (только если логгер задан, т.е. вне prod).
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"sort"

	"github.com/pribylovaa/friends-gateway/internal/metrics"
	"github.com/pribylovaa/friends-gateway/internal/models"
)

// maxDepth ограничивает спуск во вложенные объекты.
const maxDepth = 8

// rule - ключ поиска; list=false означает, что ключ - только контейнер
// (в него спускаемся, но массив под ним не принимаем).
type rule struct {
	key  string
	list bool
}

var (
	friendRules = []rule{{"friends", true}, {"data", true}, {"items", true}, {"results", true}}
	inviteRules = []rule{{"invites", true}, {"received", true}, {"data", false}, {"items", false}, {"results", false}}
	sentRules   = []rule{{"sent", true}, {"data", false}, {"items", false}, {"results", false}}
)

type Normalizer struct {
	log *slog.Logger
}

// New создаёт нормализатор. log == nil - диагностика отключена (prod).
func New(log *slog.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// Decode разбирает сырой JSON и нормализует его.
// Невалидный JSON считается нераспознанной формой.
func (n *Normalizer) Decode(raw []byte) models.FriendsList {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		n.unexpected(fmt.Sprintf("invalid json: %v", err))
		return empty()
	}

	return n.FriendsList(payload)
}

// FriendsList нормализует уже разобранный payload.
func (n *Normalizer) FriendsList(payload any) models.FriendsList {
	if seq, ok := asSeq(payload); ok {
		out := empty()
		out.Friends = n.toFriends(seq)
		return out
	}

	rec, ok := asRecord(payload)
	if !ok {
		n.unexpected(describe(payload))
		return empty()
	}

	out := empty()

	friends, okF := search(rec, friendRules, 0, visited{})
	invites, okI := search(rec, inviteRules, 0, visited{})
	sent, _ := search(rec, sentRules, 0, visited{})

	out.Friends = n.toFriends(friends)
	out.Invites = n.toFriends(invites)
	if len(sent) > 0 {
		out.Sent = n.toFriends(sent)
	}

	if !okF && !okI {
		n.unexpected(describe(payload))
	}

	dataRec, _ := asRecord(rec["data"])
	out.Total = pageNumber(rec, dataRec, "total")
	out.Page = pageNumber(rec, dataRec, "page")
	out.Limit = pageNumber(rec, dataRec, "limit")

	return out
}

// search обходит ключи rules в порядке приоритета. Массив под list-ключом
// выигрывает сразу (даже пустой); объект под любым ключом обходится рекурсивно
// и выигрывает только непустым результатом.
func search(rec map[string]any, rules []rule, depth int, seen visited) ([]any, bool) {
	if !seen.enter(rec) {
		return nil, false
	}

	for _, r := range rules {
		v, ok := rec[r.key]
		if !ok {
			continue
		}

		if seq, ok := asSeq(v); ok {
			if r.list {
				return seq, true
			}
			continue
		}

		sub, ok := asRecord(v)
		if !ok || sameMap(sub, rec) || depth+1 > maxDepth {
			continue
		}

		if got, ok := search(sub, rules, depth+1, seen); ok && len(got) > 0 {
			return got, true
		}
	}

	return nil, false
}

func (n *Normalizer) toFriends(seq []any) []models.Friend {
	out := make([]models.Friend, 0, len(seq))
	for i, v := range seq {
		rec, ok := asRecord(v)
		if !ok {
			if n.log != nil {
				n.log.Debug("friends_entry_skipped",
					slog.Int("index", i),
					slog.String("shape", describe(v)),
				)
			}
			continue
		}
		out = append(out, models.Friend(rec))
	}

	return out
}

func (n *Normalizer) unexpected(shape string) {
	metrics.UnrecognizedPayloads.Inc()

	if n.log != nil {
		n.log.Warn("friends_response_shape_unexpected", slog.String("shape", shape))
	}
}

func empty() models.FriendsList {
	return models.FriendsList{
		Friends: []models.Friend{},
		Invites: []models.FriendInvite{},
	}
}

// pageNumber читает числовое поле сначала из корня, затем из data.
func pageNumber(rec, data map[string]any, key string) *int {
	if v := toInt(rec[key]); v != nil {
		return v
	}

	if data != nil {
		return toInt(data[key])
	}

	return nil
}

// toInt принимает только целые числа в диапазоне int; прочее - "нет значения".
// JSON-числа вида 5.0 и 1e2 тоже целые.
func toInt(v any) *int {
	switch x := v.(type) {
	case int:
		return &x
	case int32:
		n := int(x)
		return &n
	case int64:
		n := int(x)
		return &n
	case float64:
		return floatToInt(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			n := int(i)
			return &n
		}
		f, err := x.Float64()
		if err != nil {
			return nil
		}
		return floatToInt(f)
	default:
		return nil
	}
}

func floatToInt(x float64) *int {
	// float64(math.MaxInt) округляется вверх до 2^63, поэтому граница строгая.
	if x != math.Trunc(x) || x < math.MinInt || x >= math.MaxInt {
		return nil
	}

	n := int(x)
	return &n
}

func asSeq(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []map[string]any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out, true
	case []models.Friend:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out, true
	default:
		return nil, false
	}
}

func asRecord(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, x != nil
	case models.Friend:
		return x, x != nil
	default:
		return nil, false
	}
}

// visited - множество уже пройденных объектов (защита от циклов).
type visited map[uintptr]struct{}

func (s visited) enter(m map[string]any) bool {
	p := reflect.ValueOf(m).Pointer()
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = struct{}{}

	return true
}

func sameMap(a, b map[string]any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func describe(v any) string {
	if v == nil {
		return "null"
	}

	if rec, ok := asRecord(v); ok {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("object%v", keys)
	}

	return fmt.Sprintf("%T", v)
}
