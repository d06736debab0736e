package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bitinglip/app/handler"
	"bitinglip/internal/service"
	"bitinglip/pkg/auth"
	"bitinglip/pkg/events"
	"bitinglip/pkg/monitoring"
	"bitinglip/pkg/store/memory"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Detail  string          `json:"detail"`
}

func newTestEngine(t *testing.T, sampler monitoring.Sampler) (*gin.Engine, *events.MemoryBus) {
	t.Helper()

	store := memory.NewSeededStore()
	bus := events.NewMemoryBus(16)
	t.Cleanup(func() { bus.Close() })

	h := Handlers{
		Auth:       handler.NewAuthHandler(service.NewAuthService(auth.NewIssuer("secret", time.Hour), "bitinglip.dev")),
		Model:      handler.NewModelHandler(service.NewModelService(store, bus)),
		Cluster:    handler.NewClusterHandler(service.NewClusterService(store, bus)),
		Task:       handler.NewTaskHandler(service.NewTaskService(store, bus)),
		Worker:     handler.NewWorkerHandler(service.NewWorkerService(store)),
		Monitoring: handler.NewMonitoringHandler(service.NewMonitoringService(store, sampler, bus)),
		Events:     handler.NewEventsHandler(bus),
		System:     handler.NewSystemHandler("BitingLip Mock API", "1.0.0"),
	}

	engine := gin.New()
	NewRouter(h, []string{"http://localhost:3000"}).Setup(engine)
	return engine, bus
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

func TestGetModel(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	w, env := do(t, engine, http.MethodGet, "/api/v1/models/model-002", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var m map[string]interface{}
	decode(t, env.Data, &m)
	assert.Equal(t, "model-002", m["id"])
	assert.Equal(t, "Stable Diffusion XL", m["name"])
	assert.Equal(t, "2024-01-20T14:30:00Z", m["created_at"])
}

func TestGetMissingRecords(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	cases := map[string]string{
		"/api/v1/models/model-999":           "Model not found",
		"/api/v1/clusters/cluster-999":       "Cluster not found",
		"/api/v1/tasks/task-999":             "Task not found",
		"/api/v1/workers/worker-999":         "Worker not found",
		"/api/v1/models/model-999/tasks":     "Model not found",
		"/api/v1/clusters/cluster-9/workers": "Cluster not found",
	}
	for path, detail := range cases {
		w, _ := do(t, engine, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"detail":"`+detail+`"}`, w.Body.String(), path)
	}

	w, _ := do(t, engine, http.MethodPost, "/api/v1/models/model-999/deploy", "{}")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Model not found"}`, w.Body.String())
}

func TestListEndpoints(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	counts := map[string]int{
		"/api/v1/models":                     3,
		"/api/v1/clusters":                   2,
		"/api/v1/tasks":                      2,
		"/api/v1/workers":                    2,
		"/api/v1/clusters/cluster-001/workers": 2,
		"/api/v1/models/model-001/tasks":     1,
	}
	for path, n := range counts {
		w, env := do(t, engine, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.True(t, env.Success)
		var items []map[string]interface{}
		decode(t, env.Data, &items)
		assert.Len(t, items, n, path)
	}
}

func TestCreateCluster(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	w, env := do(t, engine, http.MethodPost, "/api/v1/clusters", `{"name":"X"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Cluster created successfully", env.Message)

	var c map[string]interface{}
	decode(t, env.Data, &c)
	assert.Equal(t, "cluster-003", c["id"])
	assert.Equal(t, "X", c["name"])
	assert.Equal(t, "", c["description"])
	assert.Equal(t, "active", c["status"])
	assert.Equal(t, float64(0), c["worker_count"])
	assert.Equal(t, float64(0), c["gpu_usage"])

	_, env = do(t, engine, http.MethodPost, "/api/v1/clusters", `{"name":"X"}`)
	decode(t, env.Data, &c)
	assert.Equal(t, "cluster-004", c["id"])

	_, env = do(t, engine, http.MethodGet, "/api/v1/clusters", "")
	var all []map[string]interface{}
	decode(t, env.Data, &all)
	require.Len(t, all, 4)
	assert.Equal(t, "cluster-003", all[2]["id"])
	assert.Equal(t, "cluster-004", all[3]["id"])
}

func TestCreateClusterMalformedBody(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	for _, body := range []string{"", "not json", "[1,2]", `{"name": null}`, "null"} {
		w, env := do(t, engine, http.MethodPost, "/api/v1/clusters", body)
		require.Equal(t, http.StatusOK, w.Code, body)
		var c map[string]interface{}
		decode(t, env.Data, &c)
		assert.Equal(t, "New Cluster", c["name"], body)
	}
}

func TestCreateTaskKeepsNonStringFields(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	w, env := do(t, engine, http.MethodPost, "/api/v1/tasks",
		`{"name":5,"model_id":42,"cluster_id":true,"priority":["x"],"input_data":["a"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var task map[string]interface{}
	decode(t, env.Data, &task)
	assert.Equal(t, "5", task["name"])
	assert.Equal(t, "42", task["model_id"])
	assert.Equal(t, "true", task["cluster_id"])
	assert.Equal(t, `["x"]`, task["priority"])
	assert.Equal(t, map[string]interface{}{}, task["input_data"])

	_, env = do(t, engine, http.MethodPost, "/api/v1/clusters", `{"name":7,"description":{"k":"v"}}`)
	var c map[string]interface{}
	decode(t, env.Data, &c)
	assert.Equal(t, "7", c["name"])
	assert.Equal(t, `{"k":"v"}`, c["description"])
}

func TestCreateTask(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	w, env := do(t, engine, http.MethodPost, "/api/v1/tasks",
		`{"name":"Job","model_id":"model-999","priority":"high","input_data":{"prompt":"hi"},"extra":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Task created successfully", env.Message)

	var task map[string]interface{}
	decode(t, env.Data, &task)
	assert.Equal(t, "task-003", task["id"])
	assert.Equal(t, "Job", task["name"])
	assert.Equal(t, "model-999", task["model_id"])
	assert.Nil(t, task["cluster_id"])
	assert.Equal(t, "pending", task["status"])
	assert.Equal(t, "text-generation", task["task_type"])
	assert.Equal(t, "high", task["priority"])
	assert.Nil(t, task["execution_time"])
	assert.Nil(t, task["output_data"])
	assert.Equal(t, map[string]interface{}{"prompt": "hi"}, task["input_data"])
	assert.Equal(t, task["created_at"], task["updated_at"])

	_, env = do(t, engine, http.MethodPost, "/api/v1/tasks", `{}`)
	decode(t, env.Data, &task)
	assert.Equal(t, "task-004", task["id"])
	assert.Equal(t, "New Task", task["name"])
	assert.Equal(t, "medium", task["priority"])
	assert.Equal(t, map[string]interface{}{}, task["input_data"])

	w, env = do(t, engine, http.MethodGet, "/api/v1/tasks/task-004", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestDeployModel(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	for i := 0; i < 2; i++ {
		w, env := do(t, engine, http.MethodPost, "/api/v1/models/model-003/deploy", `{"cluster_id":"cluster-001"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Model deployed successfully", env.Message)
		var m map[string]interface{}
		decode(t, env.Data, &m)
		assert.Equal(t, "deployed", m["status"])
	}

	w, _ := do(t, engine, http.MethodPost, "/api/v1/models/model-001/deploy", "")
	assert.Equal(t, http.StatusOK, w.Code)

	_, env := do(t, engine, http.MethodGet, "/api/v1/models/model-003", "")
	var m map[string]interface{}
	decode(t, env.Data, &m)
	assert.Equal(t, "deployed", m["status"])
	assert.NotEqual(t, "2024-01-25T09:15:00Z", m["updated_at"])
}

func TestSystemMetrics(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	for i := 0; i < 2; i++ {
		w, env := do(t, engine, http.MethodGet, "/api/v1/monitoring/system", "")
		require.Equal(t, http.StatusOK, w.Code)
		var m map[string]interface{}
		decode(t, env.Data, &m)
		cpu := m["cpu_usage"].(float64)
		assert.GreaterOrEqual(t, cpu, 0.3)
		assert.LessOrEqual(t, cpu, 0.8)
		assert.Equal(t, float64(1), m["active_tasks"])
		assert.Equal(t, float64(2), m["total_workers"])
		assert.Equal(t, float64(2), m["active_workers"])
	}
}

func TestAlerts(t *testing.T) {
	engine, _ := newTestEngine(t, monitoring.FixedSampler(0))

	_, env := do(t, engine, http.MethodGet, "/api/v1/monitoring/alerts", "")
	var alerts []struct {
		ID        string    `json:"id"`
		Type      string    `json:"type"`
		Timestamp time.Time `json:"timestamp"`
	}
	decode(t, env.Data, &alerts)
	require.Len(t, alerts, 2)
	assert.Equal(t, "warning", alerts[0].Type)
	assert.Equal(t, "info", alerts[1].Type)
	assert.Equal(t, 5*time.Minute, alerts[0].Timestamp.Sub(alerts[1].Timestamp))

}

func TestTaskQueueStats(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	w, env := do(t, engine, http.MethodGet, "/api/v1/tasks/queue/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t,
		`{"total":2,"pending":0,"queued":0,"running":1,"completed":1,"failed":0,"cancelled":0}`,
		string(env.Data))

	_, _ = do(t, engine, http.MethodPost, "/api/v1/tasks", `{}`)
	_, env = do(t, engine, http.MethodGet, "/api/v1/tasks/queue/stats", "")
	var stats map[string]int
	decode(t, env.Data, &stats)
	assert.Equal(t, 1, stats["pending"])
	assert.Equal(t, 3, stats["total"])

	// The static segment must not shadow task ids
	w, env = do(t, engine, http.MethodGet, "/api/v1/tasks/task-001", "")
	require.Equal(t, http.StatusOK, w.Code)
	var task map[string]interface{}
	decode(t, env.Data, &task)
	assert.Equal(t, "task-001", task["id"])
}

func TestAuthEndpoints(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	w, _ := do(t, engine, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var session struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Name     string `json:"name"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, "bearer", session.TokenType)
	assert.Equal(t, "alice", session.User.Username)
	assert.Equal(t, "alice@bitinglip.dev", session.User.Email)
	assert.Equal(t, "Alice User", session.User.Name)

	w, _ = do(t, engine, http.MethodGet, "/api/v1/auth/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"admin"`)

	w, _ = do(t, engine, http.MethodPost, "/api/v1/auth/logout", "")
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, w.Body.String())

	w, _ = do(t, engine, http.MethodPost, "/api/v1/auth/refresh", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")
}

func TestHealthAndRoot(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	w, _ := do(t, engine, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "BitingLip Mock API", health["service"])
	assert.Equal(t, "1.0.0", health["version"])
	assert.NotEmpty(t, health["timestamp"])

	w, _ = do(t, engine, http.MethodGet, "/", "")
	assert.JSONEq(t, `{"message":"BitingLip Mock API","documentation":"/docs","health":"/health"}`, w.Body.String())
}

func TestEventStream(t *testing.T) {
	engine, bus := newTestEngine(t, nil)
	server := httptest.NewServer(engine)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return bus.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Post(server.URL+"/api/v1/models/model-001/deploy", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp.Body.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var e struct {
		Type string                 `json:"type"`
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&e))
	assert.Equal(t, "model_status_changed", e.Type)
	assert.Equal(t, "model-001", e.Data["id"])
	assert.Equal(t, "deployed", e.Data["status"])
}

func TestUnknownRoutes(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	for _, path := range []string{"/api/v1/nothing", "/docs", "/api/v2/models"} {
		w, _ := do(t, engine, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"detail":"Not Found"}`, w.Body.String(), path)
	}

	w, _ := do(t, engine, http.MethodDelete, "/api/v1/models", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, w.Body.String())

	w, _ = do(t, engine, http.MethodPut, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, w.Body.String())
}
