package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
)

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/items/", strings.NewReader(body))
}

func TestDecodeJSONBodyValidates(t *testing.T) {
	var req types.CreateItemRequest
	err := DecodeJSONBody(newRequest(`{"product":"Cat Tree","price":10,"min_discount":30,"max_discount":20,"duration":7}`), &req)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if _, ok := details["max_discount"]; !ok {
		t.Fatalf("expected max_discount detail, got %v", details)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	var req types.DeleteItemRequest
	if err := DecodeJSONBody(newRequest(`{"id":1,"extra":true}`), &req); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONObjectOrSingleton(t *testing.T) {
	body := `{"product":"Cat Tree","price":89.99,"min_discount":10,"max_discount":25,"duration":7}`

	for name, raw := range map[string]string{"object": body, "singleton": "[" + body + "]"} {
		var req types.CreateItemRequest
		if err := DecodeJSONObjectOrSingleton(newRequest(raw), &req); err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if req.Product != "Cat Tree" || req.MaxDiscount != 25 {
			t.Fatalf("%s: unexpected decode %+v", name, req)
		}
	}

	var req types.CreateItemRequest
	if err := DecodeJSONObjectOrSingleton(newRequest("["+body+","+body+"]"), &req); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error for two objects, got %v", err)
	}
}

func TestParsePathID(t *testing.T) {
	if id, err := ParsePathID(" 42 ", "id"); err != nil || id != 42 {
		t.Fatalf("expected 42, got %d (%v)", id, err)
	}
	for _, raw := range []string{"", "0", "-3", "abc"} {
		if _, err := ParsePathID(raw, "id"); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
