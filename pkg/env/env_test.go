package env

import "testing"

func TestGetFallsBackWhenUnset(t *testing.T) {
	t.Setenv("QUIZWIZARD_TEST_VALUE", "")
	if got := Get("QUIZWIZARD_TEST_VALUE", "json"); got != "json" {
		t.Fatalf("expected fallback, got %q", got)
	}
	t.Setenv("QUIZWIZARD_TEST_VALUE", "console")
	if got := Get("QUIZWIZARD_TEST_VALUE", "json"); got != "console" {
		t.Fatalf("expected env value, got %q", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("QUIZWIZARD_TEST_FLAG", "true")
	if !GetBool("QUIZWIZARD_TEST_FLAG", false) {
		t.Fatal("expected true")
	}
	t.Setenv("QUIZWIZARD_TEST_FLAG", "nope")
	if GetBool("QUIZWIZARD_TEST_FLAG", false) {
		t.Fatal("malformed value should use fallback")
	}
}
