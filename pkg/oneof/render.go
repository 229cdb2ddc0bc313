package oneof

import (
	"fmt"
	"log/slog"
)

// renderString prefers the active member's own Stringer. Rendering is always
// available on a container even when a member lacks fmt.Stringer; such
// members fall back to the %v verb.
func renderString(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

func renderGoString(name string, tag int, v any) string {
	return fmt.Sprintf("oneof.%s{tag: %d, value: %T(%#v)}", name, tag, v, v)
}

func renderLogValue(tag int, v any) slog.Value {
	return slog.GroupValue(
		slog.Int("tag", tag),
		slog.String("type", fmt.Sprintf("%T", v)),
		slog.Any("value", v),
	)
}
