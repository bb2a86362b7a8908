package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kataras/iris/v12"

	"property-pulse-server/services"
)

// buildErrorApp exposes one route per failure kind so the HTTP mapping
// can be asserted end to end.
func buildErrorApp() *iris.Application {
	app := iris.New()

	app.Get("/unauthenticated", func(ctx iris.Context) {
		handleServiceError(services.ErrUnauthenticated, ctx)
	})
	app.Get("/notfound", func(ctx iris.Context) {
		handleServiceError(services.ErrNotFound, ctx)
	})
	app.Get("/unauthorized", func(ctx iris.Context) {
		handleServiceError(services.ErrUnauthorized, ctx)
	})
	app.Get("/internal", func(ctx iris.Context) {
		handleServiceError(errors.New("database exploded"), ctx)
	})
	app.Get("/validation", func(ctx iris.Context) {
		err := Validate.Struct(services.SendMessageInput{
			Recipient: 2,
			Property:  1,
			Name:      "J",
			Email:     "not-an-email",
			Body:      "",
		})
		handleServiceError(err, ctx)
	})

	if err := app.Build(); err != nil {
		panic(err)
	}
	return app
}

func TestServiceErrorStatusMapping(t *testing.T) {
	app := buildErrorApp()

	cases := []struct {
		path string
		want int
	}{
		{"/unauthenticated", http.StatusUnauthorized},
		{"/notfound", http.StatusNotFound},
		{"/unauthorized", http.StatusForbidden},
		{"/internal", http.StatusInternalServerError},
		{"/validation", http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, req)
		if resp.Code != tc.want {
			t.Errorf("GET %s: got %d, want %d", tc.path, resp.Code, tc.want)
		}
	}
}

func TestServiceErrorBodies(t *testing.T) {
	app := buildErrorApp()

	req := httptest.NewRequest(http.MethodGet, "/notfound", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("not-found body is not JSON: %v", err)
	}
	if body["error"] != "not_found" {
		t.Errorf(`not-found body error = %v, want "not_found"`, body["error"])
	}
}

// Field violations map to a 422 problem document whose errors entry
// carries per-field detail.
func TestValidationProblemResponse(t *testing.T) {
	app := buildErrorApp()

	req := httptest.NewRequest(http.MethodGet, "/validation", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, want %d", resp.Code, http.StatusUnprocessableEntity)
	}

	var problem struct {
		Title  string `json:"title"`
		Errors []struct {
			Tag       string `json:"tag"`
			Namespace string `json:"namespace"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
		t.Fatalf("validation body is not JSON: %v", err)
	}

	if problem.Title != "Validation error" {
		t.Errorf("title = %q, want %q", problem.Title, "Validation error")
	}
	// Name too short, bad email, empty body: three field violations.
	if len(problem.Errors) != 3 {
		t.Fatalf("errors = %+v, want 3 field entries", problem.Errors)
	}

	fields := make(map[string]string)
	for _, fe := range problem.Errors {
		fields[fe.Namespace] = fe.Tag
	}
	if fields["SendMessageInput.Name"] != "min" {
		t.Errorf("Name violation = %q, want %q", fields["SendMessageInput.Name"], "min")
	}
	if fields["SendMessageInput.Email"] != "email" {
		t.Errorf("Email violation = %q, want %q", fields["SendMessageInput.Email"], "email")
	}
	if fields["SendMessageInput.Body"] != "required" {
		t.Errorf("Body violation = %q, want %q", fields["SendMessageInput.Body"], "required")
	}
}
