package payments

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("field order is kept", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("tx", 2)
		w.Append("client", 1)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"tx":2,"client":1}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("embed object", func(t *testing.T) {
		var w jsonObjectWriter
		w.Embed(json.RawMessage(`{"client":1,"tx":2}`))
		w.Append("reason", "account is locked")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"client":1,"tx":2,"reason":"account is locked"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("held", 0) // a zero value is still added by Append.
		w.Optional("reason", "")
		w.Optional("locked", false)
		w.Optional("type", "deposit")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"held":0,"type":"deposit"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("embed from transaction", func(t *testing.T) {
		var w jsonObjectWriter
		w.EmbedFrom(NewDispute(3, 7))
		w.Append("reason", "no dispute found")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"type":"dispute","client":3,"tx":7,"reason":"no dispute found"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}
