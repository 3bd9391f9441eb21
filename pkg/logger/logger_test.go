package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBufferAndOutput(t *testing.T) {
	var out bytes.Buffer
	l := New(Config{Level: zapcore.DebugLevel, Output: &out})

	l.Debug("[f-site] Событие точки", zap.Int("id", 3))
	l.Info("[f] готово")

	for name, text := range map[string]string{"buffer": l.Text(), "output": out.String()} {
		if !strings.Contains(text, "Событие точки") || !strings.Contains(text, `"id": 3`) {
			t.Errorf("%s: debug line missing in %q", name, text)
		}
		if !strings.Contains(text, "[f] готово") {
			t.Errorf("%s: info line missing in %q", name, text)
		}
	}

	l.ClearLogs()
	if l.Text() != "" {
		t.Errorf("buffer not cleared: %q", l.Text())
	}
}

func TestDefaultLevelIsInfo(t *testing.T) {
	l := New(Config{})
	if l.DebugEnabled() {
		t.Error("debug should be disabled by default")
	}
	l.Debug("скрыто")
	l.Warn("видно")
	if strings.Contains(l.Text(), "скрыто") || !strings.Contains(l.Text(), "видно") {
		t.Errorf("unexpected log contents %q", l.Text())
	}
}

func TestWithSharesBuffer(t *testing.T) {
	l := New(Config{})
	child := l.With(zap.String("request", "abc"))
	child.Info("из дочернего")
	if !strings.Contains(l.Text(), "из дочернего") || !strings.Contains(l.Text(), "abc") {
		t.Errorf("child logger wrote elsewhere: %q", l.Text())
	}
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Info("ничего")
	l.Error("ничего")
	if l.Text() != "" || l.HTML() != "" {
		t.Error("nop logger must not collect logs")
	}
}

func TestANSIToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "<pre>hello</pre>"},
		{"colored", "\033[32minfo\033[0m done", `<pre><span style="color: green;">info</span> done</pre>`},
		{"escaped", "a < b & c", "<pre>a &lt; b &amp; c</pre>"},
		{"unclosed", "\033[31merror", `<pre><span style="color: red;">error</span></pre>`},
		{"unknown code", "\033[35mx\033[0m", "<pre>x</pre>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansiToHTML(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTML(t *testing.T) {
	l := New(Config{})
	l.Info("<b>")
	html := l.HTML()
	if !strings.HasPrefix(html, "<pre>") || !strings.Contains(html, "&lt;b&gt;") {
		t.Errorf("unexpected html %q", html)
	}
	if !strings.Contains(html, `<span style="color: green;">info</span>`) {
		t.Errorf("level is not colored: %q", html)
	}
}
