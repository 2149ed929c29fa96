package broker

import "testing"

func TestDecodeTask(t *testing.T) {
	task, err := decodeTask([]byte(`{"url":"https://acme.com","force":true}`))
	if err != nil {
		t.Fatalf("decodeTask returned error: %v", err)
	}
	if task.URL != "https://acme.com" || !task.Force {
		t.Fatalf("unexpected task: %+v", task)
	}

	for _, raw := range []string{`{"force":true}`, `{"url":""}`, `not json`} {
		if _, err := decodeTask([]byte(raw)); err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}
}
