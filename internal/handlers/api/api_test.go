package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"healthai/internal/chat"
	"healthai/internal/lookup"
	"healthai/internal/models"
)

type recordedLookup struct {
	operation string
	key       string
	matched   bool
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedLookup
}

func (f *fakeRecorder) Record(operation, key string, matched bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedLookup{operation, key, matched})
}

func (f *fakeRecorder) last(t *testing.T) recordedLookup {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatal("no lookup recorded")
	}
	return f.calls[len(f.calls)-1]
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func newTestApp(rec *fakeRecorder, pinger Pinger) *fiber.App {
	app := fiber.New()
	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)

	probes := NewProbeHandler(pinger)
	catalog := NewCatalogHandler(nil)
	lookups := NewLookupHandler(rec)
	chats := NewChatHandler(chat.NewService(chat.DefaultMaxTurns), rec)
	dash := NewAnalyticsHandler()

	app.Get("/healthz", probes.Liveness)
	app.Get("/readyz", probes.Readiness)

	v1 := app.Group("/api/v1")
	v1.Get("/catalog", catalog.Catalog)
	v1.Get("/diseases", catalog.Diseases)
	v1.Post("/symptoms/analyze", lookups.AnalyzeSymptoms)
	v1.Get("/remedies", lookups.Remedy)
	v1.Post("/treatment-plans", lookups.TreatmentPlan)
	v1.Post("/chat/messages", chats.Send)
	v1.Get("/chat/transcript", chats.Transcript)
	v1.Delete("/chat/transcript", chats.Reset)
	v1.Get("/analytics/metrics", dash.Metrics)
	v1.Get("/analytics/metrics/:id", dash.Metric)
	v1.Get("/analytics/summary", dash.Summary)
	v1.Post("/analytics/bmi", dash.BMI)
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string, cookies []*http.Cookie) (*http.Response, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, r)
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("%s %s: invalid JSON %q: %v", method, target, raw, err)
	}
	return resp, env
}

func decodeData(t *testing.T, env envelope, v any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("failed to decode data %s: %v", env.Data, err)
	}
}

func TestProbes(t *testing.T) {
	app := newTestApp(&fakeRecorder{}, fakePinger{})
	if resp, env := do(t, app, http.MethodGet, "/healthz", "", nil); resp.StatusCode != 200 || env.Status != "ok" {
		t.Errorf("healthz = %d %q, want 200 ok", resp.StatusCode, env.Status)
	}
	if resp, _ := do(t, app, http.MethodGet, "/readyz", "", nil); resp.StatusCode != 200 {
		t.Errorf("readyz = %d, want 200", resp.StatusCode)
	}

	down := newTestApp(&fakeRecorder{}, fakePinger{err: errors.New("connection refused")})
	resp, env := do(t, down, http.MethodGet, "/readyz", "", nil)
	if resp.StatusCode != fiber.StatusServiceUnavailable || env.Status != "error" {
		t.Errorf("readyz with failing store = %d %q, want 503 error", resp.StatusCode, env.Status)
	}
}

func TestRemedy(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		status    int
		matched   bool
		wantTitle string
		wantError string
	}{
		{name: "exact key", query: "headache", status: 200, matched: true, wantTitle: "Tension Headache Relief"},
		{name: "case and whitespace", query: "%20%20Common%20COLD%20", status: 200, matched: true, wantTitle: "Natural Cold Relief"},
		{name: "fallback keeps text", query: "Back%20Pain", status: 200, matched: false, wantTitle: "Natural Relief for Back Pain"},
		{name: "missing", query: "", status: 400, wantError: "input is required"},
		{name: "blank", query: "%20%20", status: 400, wantError: "input is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &fakeRecorder{}
			app := newTestApp(rec, fakePinger{})
			resp, env := do(t, app, http.MethodGet, "/api/v1/remedies?q="+tt.query, "", nil)

			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if tt.status != 200 {
				if env.Status != "error" || env.Error != tt.wantError {
					t.Errorf("error envelope = %+v, want %q", env, tt.wantError)
				}
				if len(rec.calls) != 0 {
					t.Errorf("rejected request was recorded: %+v", rec.calls)
				}
				return
			}

			var got models.RemedyResponse
			decodeData(t, env, &got)
			if got.Matched != tt.matched {
				t.Errorf("Matched = %v, want %v", got.Matched, tt.matched)
			}
			if got.Remedy.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Remedy.Title, tt.wantTitle)
			}
			call := rec.last(t)
			if call.operation != models.OperationRemedy || call.matched != tt.matched {
				t.Errorf("recorded %+v, want remedy/%v", call, tt.matched)
			}
		})
	}
}

func TestAnalyzeSymptoms(t *testing.T) {
	rec := &fakeRecorder{}
	app := newTestApp(rec, fakePinger{})

	resp, env := do(t, app, http.MethodPost, "/api/v1/symptoms/analyze", `{"symptoms":["Fever"," fever ","","Cough"]}`, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, env.Error)
	}
	var got models.SymptomAnalysisResponse
	decodeData(t, env, &got)
	if len(got.Symptoms) != 2 || got.Symptoms[0] != "fever" || got.Symptoms[1] != "cough" {
		t.Errorf("Symptoms = %v, want [fever cough]", got.Symptoms)
	}
	want := lookup.MatchConditions(nil)
	if len(got.Conditions) != len(want) || got.Conditions[0].Name != want[0].Name {
		t.Errorf("Conditions = %+v, want %+v", got.Conditions, want)
	}
	if call := rec.last(t); call != (recordedLookup{models.OperationConditions, "", true}) {
		t.Errorf("recorded %+v", call)
	}

	for _, body := range []string{`{"symptoms":[]}`, `{"symptoms":["  ",""]}`, `{}`} {
		resp, env := do(t, app, http.MethodPost, "/api/v1/symptoms/analyze", body, nil)
		if resp.StatusCode != 400 || env.Error != "at least one symptom is required" {
			t.Errorf("body %s: got %d %q, want 400", body, resp.StatusCode, env.Error)
		}
	}

	if resp, _ := do(t, app, http.MethodPost, "/api/v1/symptoms/analyze", `not json`, nil); resp.StatusCode != 400 {
		t.Errorf("invalid JSON: status = %d, want 400", resp.StatusCode)
	}
}

func TestTreatmentPlan(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		matched bool
	}{
		{name: "known condition", body: `{"condition":"Hypertension","age":54}`, status: 200, matched: true},
		{name: "unknown condition", body: `{"condition":"Migraine"}`, status: 200, matched: false},
		{name: "empty condition", body: `{"condition":"  "}`, status: 400},
		{name: "age out of range", body: `{"condition":"hypertension","age":200}`, status: 400},
		{name: "weight out of range", body: `{"condition":"hypertension","weight":2}`, status: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&fakeRecorder{}, fakePinger{})
			resp, env := do(t, app, http.MethodPost, "/api/v1/treatment-plans", tt.body, nil)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d (%s)", resp.StatusCode, tt.status, env.Error)
			}
			if tt.status != 200 {
				return
			}
			var got models.TreatmentPlanResponse
			decodeData(t, env, &got)
			if got.Matched != tt.matched {
				t.Errorf("Matched = %v, want %v", got.Matched, tt.matched)
			}
			if len(got.Items) == 0 || got.Summary == "" {
				t.Errorf("expected items and summary, got %+v", got)
			}
		})
	}
}

func TestChatTranscriptLifecycle(t *testing.T) {
	rec := &fakeRecorder{}
	app := newTestApp(rec, fakePinger{})

	resp, env := do(t, app, http.MethodPost, "/api/v1/chat/messages", `{"text":"I have a bad headache"}`, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("send: status = %d (%s)", resp.StatusCode, env.Error)
	}
	var reply models.ChatReplyResponse
	decodeData(t, env, &reply)
	if reply.UserTurn.Role != models.RoleUser || reply.AssistantTurn.Role != models.RoleAssistant {
		t.Errorf("roles = %q/%q", reply.UserTurn.Role, reply.AssistantTurn.Role)
	}
	if reply.AssistantTurn.Text != lookup.GenerateChatReply("headache") {
		t.Errorf("unexpected reply %q", reply.AssistantTurn.Text)
	}
	if call := rec.last(t); call != (recordedLookup{models.OperationChat, "headache", true}) {
		t.Errorf("recorded %+v", call)
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie returned")
	}

	_, env = do(t, app, http.MethodGet, "/api/v1/chat/transcript", "", cookies)
	var transcript models.TranscriptResponse
	decodeData(t, env, &transcript)
	if len(transcript.Turns) != 3 {
		t.Fatalf("transcript has %d turns, want 3", len(transcript.Turns))
	}
	if transcript.Turns[0].Text != lookup.Greeting() {
		t.Errorf("first turn = %q, want greeting", transcript.Turns[0].Text)
	}
	if transcript.Turns[1].ID != reply.UserTurn.ID {
		t.Error("stored user turn does not match returned turn")
	}

	_, env = do(t, app, http.MethodDelete, "/api/v1/chat/transcript", "", cookies)
	decodeData(t, env, &transcript)
	if len(transcript.Turns) != 1 {
		t.Errorf("after reset transcript has %d turns, want 1", len(transcript.Turns))
	}

	resp, env = do(t, app, http.MethodPost, "/api/v1/chat/messages", `{"text":"   "}`, cookies)
	if resp.StatusCode != 400 || env.Error != "input is required" {
		t.Errorf("empty message: %d %q, want 400", resp.StatusCode, env.Error)
	}
}

func TestChatTranscriptIsolatedPerSession(t *testing.T) {
	app := newTestApp(&fakeRecorder{}, fakePinger{})

	if resp, _ := do(t, app, http.MethodPost, "/api/v1/chat/messages", `{"text":"hello"}`, nil); resp.StatusCode != 200 {
		t.Fatalf("send: status = %d", resp.StatusCode)
	}

	_, env := do(t, app, http.MethodGet, "/api/v1/chat/transcript", "", nil)
	var transcript models.TranscriptResponse
	decodeData(t, env, &transcript)
	if len(transcript.Turns) != 1 {
		t.Errorf("new session transcript has %d turns, want 1", len(transcript.Turns))
	}
}

func TestAnalytics(t *testing.T) {
	app := newTestApp(&fakeRecorder{}, fakePinger{})

	_, env := do(t, app, http.MethodGet, "/api/v1/analytics/metrics", "", nil)
	var overview []models.MetricOverview
	decodeData(t, env, &overview)
	if len(overview) != 5 {
		t.Errorf("got %d metrics, want 5", len(overview))
	}

	resp, env := do(t, app, http.MethodGet, "/api/v1/analytics/metrics/bloodPressure", "", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("metric: status = %d", resp.StatusCode)
	}
	var series models.MetricSeriesResponse
	decodeData(t, env, &series)
	if len(series.Points) != 7 || series.Points[0].Systolic == nil {
		t.Errorf("unexpected blood pressure series: %+v", series.Points)
	}
	if series.Trend.Direction != models.TrendUp {
		t.Errorf("Trend = %+v, want up", series.Trend)
	}

	if resp, env := do(t, app, http.MethodGet, "/api/v1/analytics/metrics/steps", "", nil); resp.StatusCode != 404 || env.Status != "error" {
		t.Errorf("unknown metric: %d %q, want 404", resp.StatusCode, env.Status)
	}

	_, env = do(t, app, http.MethodGet, "/api/v1/analytics/summary", "", nil)
	var summary models.AnalyticsSummaryResponse
	decodeData(t, env, &summary)
	if len(summary.RiskDistribution) != 3 || len(summary.Insights) != 4 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		status   int
		bmi      float64
		category string
	}{
		{name: "normal", body: `{"weight_kg":70,"height_cm":175}`, status: 200, bmi: 22.9, category: "Normal weight"},
		{name: "obese", body: `{"weight_kg":120,"height_cm":170}`, status: 200, bmi: 41.5, category: "Obese"},
		{name: "weight too low", body: `{"weight_kg":5,"height_cm":175}`, status: 400},
		{name: "missing height", body: `{"weight_kg":70}`, status: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&fakeRecorder{}, fakePinger{})
			resp, env := do(t, app, http.MethodPost, "/api/v1/analytics/bmi", tt.body, nil)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if tt.status != 200 {
				return
			}
			var got models.BMIResponse
			decodeData(t, env, &got)
			if got.BMI != tt.bmi || got.Category != tt.category {
				t.Errorf("got %+v, want %v %q", got, tt.bmi, tt.category)
			}
		})
	}
}

func TestCatalog(t *testing.T) {
	app := newTestApp(&fakeRecorder{}, fakePinger{})

	_, env := do(t, app, http.MethodGet, "/api/v1/catalog", "", nil)
	var got models.CatalogResponse
	decodeData(t, env, &got)
	if len(got.CommonSymptoms) != len(lookup.CommonSymptoms()) {
		t.Errorf("CommonSymptoms = %d entries", len(got.CommonSymptoms))
	}
	if got.Disclaimers["chat"] == "" {
		t.Error("missing chat disclaimer")
	}

	_, env = do(t, app, http.MethodGet, "/api/v1/diseases?symptom=Headache", "", nil)
	var diseases []models.Disease
	decodeData(t, env, &diseases)
	if len(diseases) != 2 {
		t.Errorf("got %d diseases with headache, want 2", len(diseases))
	}
	for _, d := range diseases {
		if !d.HasSymptom("headache") {
			t.Errorf("disease %q does not list headache", d.Name)
		}
	}

	_, env = do(t, app, http.MethodGet, "/api/v1/diseases?symptom=zzz", "", nil)
	if string(env.Data) != "[]" {
		t.Errorf("no-match data = %s, want []", env.Data)
	}
}
