package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"todo-backend/application/serviceimpl"
	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
	"todo-backend/infrastructure/session"
	"todo-backend/interfaces/api/handlers"
	"todo-backend/interfaces/api/middleware"
	"todo-backend/pkg/auth"
	"todo-backend/pkg/config"
)

// In-memory repositories so the full stack (routes, middleware, handlers,
// services) runs against app.Test without a database.

type memUserRepo struct {
	nextID uint
	users  map[uint]*models.User
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type memSubtaskRepo struct {
	nextID   uint
	subtasks map[uint]*models.Subtask
}

func (r *memSubtaskRepo) Create(ctx context.Context, subtask *models.Subtask) error {
	r.nextID++
	subtask.ID = r.nextID
	subtask.CreatedAt = time.Now().UTC()
	subtask.UpdatedAt = subtask.CreatedAt
	copied := *subtask
	r.subtasks[subtask.ID] = &copied
	return nil
}

func (r *memSubtaskRepo) GetByID(ctx context.Context, id uint) (*models.Subtask, error) {
	if st, ok := r.subtasks[id]; ok {
		copied := *st
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSubtaskRepo) ListByTask(ctx context.Context, taskID uint) ([]*models.Subtask, error) {
	var out []*models.Subtask
	for _, st := range r.subtasks {
		if st.TaskID == taskID {
			copied := *st
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memSubtaskRepo) Save(ctx context.Context, subtask *models.Subtask) error {
	if _, ok := r.subtasks[subtask.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *subtask
	r.subtasks[subtask.ID] = &copied
	return nil
}

func (r *memSubtaskRepo) DeleteByIDs(ctx context.Context, ids []uint) error {
	for _, id := range ids {
		delete(r.subtasks, id)
	}
	return nil
}

func (r *memSubtaskRepo) SetCompleted(ctx context.Context, ids []uint, completed bool) error {
	for _, id := range ids {
		if st, ok := r.subtasks[id]; ok {
			st.IsCompleted = completed
		}
	}
	return nil
}

type memTaskRepo struct {
	nextID   uint
	tasks    map[uint]*models.Task
	subtasks *memSubtaskRepo
}

func (r *memTaskRepo) Create(ctx context.Context, task *models.Task) error {
	r.nextID++
	task.ID = r.nextID
	task.CreatedAt = time.Now().UTC()
	task.UpdatedAt = task.CreatedAt
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *memTaskRepo) GetByID(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *memTaskRepo) GetByIDWithSubtasks(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	task, err := r.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	children, _ := r.subtasks.ListByTask(ctx, taskID)
	task.Subtasks = make([]models.Subtask, 0, len(children))
	for _, st := range children {
		task.Subtasks = append(task.Subtasks, *st)
	}
	return task, nil
}

func (r *memTaskRepo) ListByUser(ctx context.Context, userID uint, filter repositories.TaskListFilter) ([]*models.Task, error) {
	var out []*models.Task
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		copied := *t
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTaskRepo) Save(ctx context.Context, task *models.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *memTaskRepo) DeleteCascade(ctx context.Context, task *models.Task) error {
	for id, st := range r.subtasks.subtasks {
		if st.TaskID == task.ID {
			delete(r.subtasks.subtasks, id)
		}
	}
	delete(r.tasks, task.ID)
	return nil
}

func (r *memTaskRepo) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

// envelope mirrors the response wrapper for decoding in assertions.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, config.SessionConfig) {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Name: "todo-backend-test"},
		Session: config.SessionConfig{
			CookieName:     "todo_session",
			CookieSameSite: "Lax",
			CookieHTTPOnly: true,
			TTLHours:       1,
		},
	}

	subtaskRepo := &memSubtaskRepo{subtasks: map[uint]*models.Subtask{}}
	taskRepo := &memTaskRepo{tasks: map[uint]*models.Task{}, subtasks: subtaskRepo}
	userRepo := &memUserRepo{users: map[uint]*models.User{}}

	manager := session.NewManager(session.NewMemoryStore(), cfg.Session)

	h := handlers.NewHandlers(&handlers.Services{
		AuthService:    serviceimpl.NewAuthService(userRepo, auth.AcceptAll{}),
		TaskService:    serviceimpl.NewTaskService(taskRepo, subtaskRepo),
		SubtaskService: serviceimpl.NewSubtaskService(taskRepo, subtaskRepo),
		Sessions:       manager,
		SessionConfig:  cfg.Session,
	})

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	SetupRoutes(app, h, manager, cfg)
	return app, cfg.Session
}

func doJSON(t *testing.T, app *fiber.App, method, path, cookie string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return resp, env
}

// login authenticates and returns the session cookie header value.
func login(t *testing.T, app *fiber.App, cookieName, username string) string {
	t.Helper()

	resp, env := doJSON(t, app, fiber.MethodPost, "/auth/login", "", fiber.Map{"username": username})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	if !env.Success {
		t.Fatal("login envelope not successful")
	}

	for _, c := range resp.Cookies() {
		if c.Name == cookieName {
			return c.Name + "=" + c.Value
		}
	}
	t.Fatal("no session cookie set on login")
	return ""
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/", "/health"} {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestAuthFlow(t *testing.T) {
	app, cfg := newTestApp(t)

	cookie := login(t, app, cfg.CookieName, "alice")

	resp, env := doJSON(t, app, fiber.MethodGet, "/auth/me", cookie, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("me status = %d", resp.StatusCode)
	}
	var me struct {
		User *struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	json.Unmarshal(env.Data, &me)
	if me.User == nil || me.User.Username != "alice" {
		t.Errorf("me = %+v, want alice", me.User)
	}

	// Anonymous /me answers 200 with a null user, not 401.
	resp, env = doJSON(t, app, fiber.MethodGet, "/auth/me", "", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("anonymous me status = %d", resp.StatusCode)
	}
	json.Unmarshal(env.Data, &me)
	if me.User != nil {
		t.Errorf("anonymous me user = %+v, want null", me.User)
	}

	resp, _ = doJSON(t, app, fiber.MethodPost, "/auth/logout", cookie, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("logout status = %d", resp.StatusCode)
	}

	resp, env = doJSON(t, app, fiber.MethodGet, "/auth/me", cookie, nil)
	json.Unmarshal(env.Data, &me)
	if me.User != nil {
		t.Errorf("me after logout = %+v, want null", me.User)
	}
}

func TestLoginValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/auth/login", "", fiber.Map{"username": ""})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v, want VALIDATION_ERROR", env.Error)
	}
}

func TestTasksRequireSession(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, fiber.MethodGet, "/tasks", "", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "UNAUTHORIZED" {
		t.Errorf("error = %+v, want UNAUTHORIZED", env.Error)
	}
}

func TestTaskLifecycle(t *testing.T) {
	app, cfg := newTestApp(t)
	cookie := login(t, app, cfg.CookieName, "alice")

	resp, env := doJSON(t, app, fiber.MethodPost, "/tasks", cookie, fiber.Map{
		"title":             "write report",
		"priority":          1,
		"estimated_minutes": 90,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created struct {
		ID       uint `json:"id"`
		Priority int  `json:"priority"`
	}
	json.Unmarshal(env.Data, &created)
	if created.ID == 0 || created.Priority != 1 {
		t.Fatalf("created = %+v", created)
	}

	resp, env = doJSON(t, app, fiber.MethodPatch, "/tasks/1", cookie, fiber.Map{"title": "write the report"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("patch status = %d", resp.StatusCode)
	}
	var patched struct {
		Title    string `json:"title"`
		Priority int    `json:"priority"`
	}
	json.Unmarshal(env.Data, &patched)
	if patched.Title != "write the report" || patched.Priority != 1 {
		t.Errorf("patched = %+v, partial update went wrong", patched)
	}

	resp, env = doJSON(t, app, fiber.MethodPost, "/tasks/1/complete", cookie, fiber.Map{})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("complete status = %d", resp.StatusCode)
	}
	var completed struct {
		IsCompleted bool `json:"is_completed"`
	}
	json.Unmarshal(env.Data, &completed)
	if !completed.IsCompleted {
		t.Error("complete without body did not default to complete=true")
	}

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/tasks/1", cookie, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, fiber.MethodGet, "/tasks/1", cookie, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestTaskOwnershipHiddenAcrossUsers(t *testing.T) {
	app, cfg := newTestApp(t)
	aliceCookie := login(t, app, cfg.CookieName, "alice")
	bobCookie := login(t, app, cfg.CookieName, "bob")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/tasks", aliceCookie, fiber.Map{"title": "private"})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}

	// Another user's task is indistinguishable from a missing one.
	for _, path := range []string{"/tasks/1", "/tasks/999"} {
		resp, env := doJSON(t, app, fiber.MethodGet, path, bobCookie, nil)
		if resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, resp.StatusCode)
		}
		if env.Error == nil || env.Error.Code != "NOT_FOUND" {
			t.Errorf("GET %s error = %+v, want NOT_FOUND", path, env.Error)
		}
	}

	resp, env := doJSON(t, app, fiber.MethodGet, "/tasks", bobCookie, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var list []json.RawMessage
	json.Unmarshal(env.Data, &list)
	if len(list) != 0 {
		t.Errorf("bob sees %d tasks, want 0", len(list))
	}
}

func TestTaskValidation(t *testing.T) {
	app, cfg := newTestApp(t)
	cookie := login(t, app, cfg.CookieName, "alice")

	resp, env := doJSON(t, app, fiber.MethodPost, "/tasks", cookie, fiber.Map{"description": "no title"})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v, want VALIDATION_ERROR", env.Error)
	}

	resp, _ = doJSON(t, app, fiber.MethodGet, "/tasks/abc", cookie, nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("non-numeric id status = %d, want 400", resp.StatusCode)
	}

	// Zero is a well-formed id nobody owns, so it 404s like any other miss.
	resp, _ = doJSON(t, app, fiber.MethodGet, "/tasks/0", cookie, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("id 0 status = %d, want 404", resp.StatusCode)
	}
}

func TestTaskPatchNullClearsNullableFields(t *testing.T) {
	app, cfg := newTestApp(t)
	cookie := login(t, app, cfg.CookieName, "alice")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/tasks", cookie, fiber.Map{
		"title":       "with deadline",
		"description": "and notes",
		"due_at":      "2026-09-01T00:00:00Z",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}

	resp, env := doJSON(t, app, fiber.MethodPatch, "/tasks/1", cookie, map[string]any{
		"due_at":      nil,
		"description": nil,
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("patch status = %d", resp.StatusCode)
	}
	var got struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		DueAt       *string `json:"due_at"`
	}
	json.Unmarshal(env.Data, &got)
	if got.DueAt != nil {
		t.Errorf("due_at after explicit null = %v, want cleared", *got.DueAt)
	}
	if got.Description != nil {
		t.Errorf("description after explicit null = %v, want cleared", *got.Description)
	}
	if got.Title != "with deadline" {
		t.Errorf("title = %q, unrelated field changed", got.Title)
	}

	// A PATCH without those keys leaves other tasks' values alone.
	doJSON(t, app, fiber.MethodPatch, "/tasks/1", cookie, fiber.Map{"due_at": "2026-10-01T00:00:00Z"})
	resp, env = doJSON(t, app, fiber.MethodPatch, "/tasks/1", cookie, fiber.Map{"title": "renamed"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("patch status = %d", resp.StatusCode)
	}
	json.Unmarshal(env.Data, &got)
	if got.DueAt == nil {
		t.Error("due_at cleared by a PATCH that never mentioned it")
	}
}

func TestSubtaskLifecycle(t *testing.T) {
	app, cfg := newTestApp(t)
	cookie := login(t, app, cfg.CookieName, "alice")

	doJSON(t, app, fiber.MethodPost, "/tasks", cookie, fiber.Map{
		"title":             "parent",
		"priority":          2,
		"estimated_minutes": 60,
	})

	resp, env := doJSON(t, app, fiber.MethodPost, "/tasks/1/subtasks", cookie, fiber.Map{"title": "step one"})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create subtask status = %d", resp.StatusCode)
	}
	var st struct {
		ID                uint `json:"id"`
		TaskID            uint `json:"task_id"`
		EffectivePriority *int `json:"effective_priority"`
	}
	json.Unmarshal(env.Data, &st)
	if st.TaskID != 1 {
		t.Errorf("task_id = %d, want 1", st.TaskID)
	}
	if st.EffectivePriority == nil || *st.EffectivePriority != 2 {
		t.Errorf("effective_priority = %v, want inherited 2", st.EffectivePriority)
	}

	// Nest a child, then clear its parent with an explicit null.
	resp, env = doJSON(t, app, fiber.MethodPost, "/tasks/1/subtasks", cookie, fiber.Map{
		"title":             "step two",
		"parent_subtask_id": st.ID,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create nested status = %d", resp.StatusCode)
	}
	var nested struct {
		ID              uint  `json:"id"`
		ParentSubtaskID *uint `json:"parent_subtask_id"`
	}
	json.Unmarshal(env.Data, &nested)
	if nested.ParentSubtaskID == nil || *nested.ParentSubtaskID != st.ID {
		t.Fatalf("parent_subtask_id = %v, want %d", nested.ParentSubtaskID, st.ID)
	}

	resp, env = doJSON(t, app, fiber.MethodPatch, "/subtasks/2", cookie, map[string]any{"parent_subtask_id": nil})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("reparent status = %d", resp.StatusCode)
	}
	json.Unmarshal(env.Data, &nested)
	if nested.ParentSubtaskID != nil {
		t.Errorf("parent_subtask_id = %v, want cleared", nested.ParentSubtaskID)
	}

	resp, env = doJSON(t, app, fiber.MethodGet, "/tasks/1/subtasks", cookie, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list subtasks status = %d", resp.StatusCode)
	}
	var list []json.RawMessage
	json.Unmarshal(env.Data, &list)
	if len(list) != 2 {
		t.Errorf("len = %d, want 2", len(list))
	}

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/subtasks/1", cookie, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete subtask status = %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, fiber.MethodGet, "/subtasks/1", cookie, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestSubtaskInvalidParent(t *testing.T) {
	app, cfg := newTestApp(t)
	cookie := login(t, app, cfg.CookieName, "alice")

	doJSON(t, app, fiber.MethodPost, "/tasks", cookie, fiber.Map{"title": "parent"})
	doJSON(t, app, fiber.MethodPost, "/tasks/1/subtasks", cookie, fiber.Map{"title": "a"})

	resp, env := doJSON(t, app, fiber.MethodPatch, "/subtasks/1", cookie, fiber.Map{"parent_subtask_id": 1})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("self-parent status = %d, want 400", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "BAD_REQUEST" {
		t.Errorf("error = %+v, want BAD_REQUEST", env.Error)
	}

	resp, _ = doJSON(t, app, fiber.MethodPost, "/tasks/1/subtasks", cookie, fiber.Map{
		"title":             "orphan",
		"parent_subtask_id": 999,
	})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("missing parent status = %d, want 404", resp.StatusCode)
	}
}

func TestOpenAPIDocumentServed(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/openapi.json", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("GET /openapi.json: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var doc struct {
		OpenAPI string                     `json:"openapi"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.OpenAPI == "" {
		t.Error("missing openapi version")
	}
	for _, path := range []string{"/auth/login", "/tasks", "/tasks/{id}", "/subtasks/{id}/complete"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("document missing path %s", path)
		}
	}
}

func TestSubtaskPatchNullClearsDescription(t *testing.T) {
	app, cfg := newTestApp(t)
	cookie := login(t, app, cfg.CookieName, "alice")

	doJSON(t, app, fiber.MethodPost, "/tasks", cookie, fiber.Map{"title": "parent"})
	resp, _ := doJSON(t, app, fiber.MethodPost, "/tasks/1/subtasks", cookie, fiber.Map{
		"title":       "step",
		"description": "notes",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}

	var got struct {
		Description *string `json:"description"`
	}

	// A PATCH without the key keeps the description.
	resp, env := doJSON(t, app, fiber.MethodPatch, "/subtasks/1", cookie, fiber.Map{"title": "renamed"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("patch status = %d", resp.StatusCode)
	}
	json.Unmarshal(env.Data, &got)
	if got.Description == nil || *got.Description != "notes" {
		t.Errorf("description = %v, absent key must not clear", got.Description)
	}

	resp, env = doJSON(t, app, fiber.MethodPatch, "/subtasks/1", cookie, map[string]any{"description": nil})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("patch status = %d", resp.StatusCode)
	}
	json.Unmarshal(env.Data, &got)
	if got.Description != nil {
		t.Errorf("description after explicit null = %v, want cleared", *got.Description)
	}
}
