package github

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
)

// mockClient implements Client for testing.
type mockClient struct {
	getFn func(ctx context.Context, endpoint string, v any) error
}

func (m *mockClient) Get(ctx context.Context, endpoint string, v any) error {
	return m.getFn(ctx, endpoint, v)
}

// fixtureClient serves canned JSON bodies keyed by endpoint and records
// every endpoint requested. Unknown endpoints fail the test.
type fixtureClient struct {
	t      *testing.T
	bodies map[string]string
	errs   map[string]error

	mu    sync.Mutex
	calls []string
}

func newFixtureClient(t *testing.T, bodies map[string]string) *fixtureClient {
	return &fixtureClient{t: t, bodies: bodies, errs: map[string]error{}}
}

func (f *fixtureClient) Get(_ context.Context, endpoint string, v any) error {
	f.mu.Lock()
	f.calls = append(f.calls, endpoint)
	f.mu.Unlock()

	if err, ok := f.errs[endpoint]; ok {
		return err
	}
	body, ok := f.bodies[endpoint]
	if !ok {
		f.t.Errorf("unexpected endpoint %q", endpoint)
		return fmt.Errorf("no fixture for %s", endpoint)
	}
	return json.Unmarshal([]byte(body), v)
}

func (f *fixtureClient) called(endpoint string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == endpoint {
			return true
		}
	}
	return false
}

// jsonKeys returns the top-level keys of v's JSON encoding.
func jsonKeys(t *testing.T, v any) map[string]bool {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("not a JSON object: %s", data)
	}
	keys := make(map[string]bool, len(m))
	for k := range m {
		keys[k] = true
	}
	return keys
}

func assertKeys(t *testing.T, v any, want ...string) {
	t.Helper()
	got := jsonKeys(t, v)
	if len(got) != len(want) {
		t.Errorf("got keys %v, want %v", got, want)
	}
	for _, k := range want {
		if !got[k] {
			t.Errorf("missing key %q in %v", k, got)
		}
	}
}

const torvaldsUser = `{
	"login": "torvalds",
	"id": 1024025,
	"followers": 230000,
	"public_repos": 8,
	"bio": null,
	"company": "Linux Foundation"
}`

const torvaldsRepos = `[
	{"name": "linux", "owner": {"login": "torvalds"}, "stargazers_count": 180000, "forks_count": 54000, "language": "C"},
	{"name": "subsurface-for-dirk", "owner": {"login": "torvalds"}, "stargazers_count": 300, "forks_count": 100, "language": "C++"},
	{"name": "test-tlb", "owner": {"login": "torvalds"}, "stargazers_count": 700, "forks_count": 90, "language": null},
	{"name": "uemacs", "owner": {"login": "torvalds"}, "stargazers_count": 1500, "forks_count": 250, "language": "C"},
	{"name": "pesconvert", "owner": {"login": "torvalds"}, "stargazers_count": 400, "forks_count": 80, "language": "C"},
	{"name": "libdc-for-dirk", "owner": {"login": "torvalds"}, "stargazers_count": 250, "forks_count": 120, "language": "C"}
]`

const fastapiRepo = `{
	"name": "fastapi",
	"full_name": "tiangolo/fastapi",
	"owner": {"login": "tiangolo", "id": 1326112},
	"stargazers_count": 80000,
	"forks_count": 6800,
	"language": "Python",
	"open_issues_count": 400
}`
