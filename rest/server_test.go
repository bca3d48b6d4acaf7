package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/damedic/fhirpath-go/fhirpath"
	"github.com/damedic/fhirpath-go/internal/exprcache"
	"github.com/damedic/fhirpath-go/model"
	"github.com/damedic/fhirpath-go/rest"
	"github.com/damedic/fhirpath-go/testdata"
	"github.com/damedic/fhirpath-go/testdata/assert"
)

// testCase represents a common structure for HTTP handler tests
type testCase struct {
	name           string
	method         string
	target         string
	requestBody    string
	expectedStatus int
	// expectedBody is compared as JSON when set.
	expectedBody string
	// expectedIssueCode is checked on OperationOutcome responses.
	expectedIssueCode string
}

func newTestServer() *rest.Server {
	template := fhirpath.NewEvaluationContext(fhirpath.WithModel(model.R4{}))
	return rest.NewServer(template, exprcache.New(16), zerolog.Nop())
}

// runTest executes a common test pattern for HTTP handlers
func runTest(t *testing.T, server *rest.Server, tc testCase) {
	t.Helper()

	var body *strings.Reader
	if tc.requestBody != "" {
		body = strings.NewReader(tc.requestBody)
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(tc.method, "http://example.com"+tc.target, body)
	if tc.requestBody != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != tc.expectedStatus {
		t.Errorf("expected status %d, got %d (body %s)", tc.expectedStatus, rr.Code, rr.Body.String())
	}
	if tc.expectedBody != "" {
		assert.JSONEqual(t, tc.expectedBody, rr.Body.String())
	}
	if tc.expectedIssueCode != "" {
		var oo rest.OperationOutcome
		if err := json.Unmarshal(rr.Body.Bytes(), &oo); err != nil {
			t.Fatalf("expected OperationOutcome, got %s", rr.Body.String())
		}
		if oo.ResourceType != "OperationOutcome" || len(oo.Issue) != 1 {
			t.Fatalf("unexpected outcome %+v", oo)
		}
		if oo.Issue[0].Code != tc.expectedIssueCode {
			t.Errorf("expected issue code %q, got %q", tc.expectedIssueCode, oo.Issue[0].Code)
		}
	}
}

func evaluateBody(t *testing.T, expression string, resourceFile string, extra map[string]any) string {
	t.Helper()
	req := map[string]any{"expression": expression}
	if resourceFile != "" {
		req["resource"] = json.RawMessage(testdata.GetExamples()[resourceFile])
	}
	for k, v := range extra {
		req[k] = v
	}
	b, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestEvaluate(t *testing.T) {
	tests := []testCase{
		{
			name:           "query without resource",
			method:         http.MethodGet,
			target:         "/$evaluate?expression=" + url.QueryEscape("1 + 1"),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"expression":"1 + 1","result":[{"type":"System.Integer","value":2}]}`,
		},
		{
			name:           "empty result",
			method:         http.MethodGet,
			target:         "/$evaluate?expression=" + url.QueryEscape("{}"),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"expression":"{}","result":[]}`,
		},
		{
			name:           "patient names",
			method:         http.MethodPost,
			target:         "/$evaluate",
			requestBody:    evaluateBody(t, "Patient.name.where(use = 'official').given", "patient-example.json", nil),
			expectedStatus: http.StatusOK,
			expectedBody: `{"expression":"Patient.name.where(use = 'official').given","result":[
				{"type":"FHIR.string","value":"Peter"},
				{"type":"FHIR.string","value":"James"}]}`,
		},
		{
			name:           "quantity",
			method:         http.MethodPost,
			target:         "/$evaluate",
			requestBody:    evaluateBody(t, "Observation.value.toQuantity()", "observation-example.json", nil),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"expression":"Observation.value.toQuantity()","result":[{"type":"System.Quantity","value":{"value":185,"unit":"[lb_av]"}}]}`,
		},
		{
			name:           "variables",
			method:         http.MethodPost,
			target:         "/$evaluate",
			requestBody:    evaluateBody(t, "%limit > 3", "", map[string]any{"variables": map[string]any{"limit": 5}}),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"expression":"%limit > 3","result":[{"type":"System.Boolean","value":true}]}`,
		},
		{
			name:           "trace",
			method:         http.MethodPost,
			target:         "/$evaluate",
			requestBody:    evaluateBody(t, "(1 | 2).trace('numbers').count()", "", nil),
			expectedStatus: http.StatusOK,
			expectedBody: `{"expression":"(1 | 2).trace('numbers').count()",
				"result":[{"type":"System.Integer","value":2}],
				"trace":[{"name":"numbers","value":[{"type":"System.Integer","value":1},{"type":"System.Integer","value":2}]}]}`,
		},
		{
			name:              "syntax error",
			method:            http.MethodPost,
			target:            "/$evaluate",
			requestBody:       evaluateBody(t, "(1 + ", "", nil),
			expectedStatus:    http.StatusBadRequest,
			expectedIssueCode: "invalid",
		},
		{
			name:              "deeply nested expression",
			method:            http.MethodPost,
			target:            "/$evaluate",
			requestBody:       evaluateBody(t, strings.Repeat("(", 100_000)+"1"+strings.Repeat(")", 100_000), "", nil),
			expectedStatus:    http.StatusBadRequest,
			expectedIssueCode: "invalid",
		},
		{
			name:              "evaluation error",
			method:            http.MethodPost,
			target:            "/$evaluate",
			requestBody:       evaluateBody(t, "'a' + 1", "", nil),
			expectedStatus:    http.StatusUnprocessableEntity,
			expectedIssueCode: "processing",
		},
		{
			name:              "strict override",
			method:            http.MethodPost,
			target:            "/$evaluate",
			requestBody:       evaluateBody(t, "Patient.unknown", "patient-example.json", map[string]any{"strict": true}),
			expectedStatus:    http.StatusUnprocessableEntity,
			expectedIssueCode: "processing",
		},
		{
			name:              "missing expression",
			method:            http.MethodPost,
			target:            "/$evaluate",
			requestBody:       `{"resource":{"resourceType":"Patient"}}`,
			expectedStatus:    http.StatusBadRequest,
			expectedIssueCode: "required",
		},
		{
			name:              "malformed body",
			method:            http.MethodPost,
			target:            "/$evaluate",
			requestBody:       `{"expression":`,
			expectedStatus:    http.StatusBadRequest,
			expectedIssueCode: "structure",
		},
		{
			name:              "not a resource",
			method:            http.MethodPost,
			target:            "/$evaluate",
			requestBody:       `{"expression":"id","resource":{"id":"1"}}`,
			expectedStatus:    http.StatusBadRequest,
			expectedIssueCode: "invalid",
		},
		{
			name:              "unknown release",
			method:            http.MethodGet,
			target:            "/$evaluate?expression=1&release=R2",
			expectedStatus:    http.StatusBadRequest,
			expectedIssueCode: "value",
		},
		{
			name:              "unknown route",
			method:            http.MethodGet,
			target:            "/Patient/1",
			expectedStatus:    http.StatusNotFound,
			expectedIssueCode: "not-found",
		},
		{
			name:           "health",
			method:         http.MethodGet,
			target:         "/health",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
	}

	server := newTestServer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runTest(t, server, tc)
		})
	}
}

func TestEvaluateBodyLimit(t *testing.T) {
	server := newTestServer()
	server.BodyLimit = "1K"
	runTest(t, server, testCase{
		method:            http.MethodPost,
		target:            "/$evaluate",
		requestBody:       evaluateBody(t, strings.Repeat("1 + ", 512)+"1", "", nil),
		expectedStatus:    http.StatusRequestEntityTooLarge,
		expectedIssueCode: "too-long",
	})
	runTest(t, server, testCase{
		method:         http.MethodPost,
		target:         "/$evaluate",
		requestBody:    evaluateBody(t, "1 + 1", "", nil),
		expectedStatus: http.StatusOK,
		expectedBody:   `{"expression":"1 + 1","result":[{"type":"System.Integer","value":2}]}`,
	})
}

func TestEvaluateUsesCache(t *testing.T) {
	cache := exprcache.New(4)
	server := rest.NewServer(nil, cache, zerolog.Nop())
	tc := testCase{
		method:         http.MethodGet,
		target:         "/$evaluate?expression=" + url.QueryEscape("2 * 3"),
		expectedStatus: http.StatusOK,
		expectedBody:   `{"expression":"2 * 3","result":[{"type":"System.Integer","value":6}]}`,
	}
	runTest(t, server, tc)
	runTest(t, server, tc)

	if diff := cmp.Diff(exprcache.Stats{Hits: 1, Misses: 1}, cache.Stats()); diff != "" {
		t.Errorf("cache stats mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateDoesNotLeakState(t *testing.T) {
	server := newTestServer()
	first := testCase{
		method:         http.MethodPost,
		target:         "/$evaluate",
		requestBody:    evaluateBody(t, "Patient.id", "patient-example.json", nil),
		expectedStatus: http.StatusOK,
		expectedBody:   `{"expression":"Patient.id","result":[{"type":"FHIR.id","value":"example"}]}`,
	}
	second := testCase{
		method:         http.MethodPost,
		target:         "/$evaluate",
		requestBody:    evaluateBody(t, "Patient.id", "", nil),
		expectedStatus: http.StatusOK,
		expectedBody:   `{"expression":"Patient.id","result":[]}`,
	}
	runTest(t, server, first)
	runTest(t, server, second)
}
