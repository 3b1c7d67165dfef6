package logger

import "testing"

func TestNew(t *testing.T) {
	log, err := New("debug")
	if err != nil {
		t.Fatalf("New(debug) error = %v", err)
	}
	if log == nil {
		t.Fatal("New(debug) returned nil logger")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("chatty"); err == nil {
		t.Error("New(chatty) expected error")
	}
}
