package serviceimpl

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
)

// In-memory repository fakes. The task fake holds a reference to the subtask
// fake so DeleteCascade and DeleteCompletedBefore behave like the real
// transactional implementations.

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeSubtaskRepo struct {
	nextID   uint
	subtasks map[uint]*models.Subtask
	getErr   error // forced GetByID failure when set
}

func newFakeSubtaskRepo() *fakeSubtaskRepo {
	return &fakeSubtaskRepo{subtasks: map[uint]*models.Subtask{}}
}

func (r *fakeSubtaskRepo) Create(ctx context.Context, subtask *models.Subtask) error {
	r.nextID++
	subtask.ID = r.nextID
	subtask.CreatedAt = time.Now().UTC()
	subtask.UpdatedAt = subtask.CreatedAt
	copied := *subtask
	r.subtasks[subtask.ID] = &copied
	return nil
}

func (r *fakeSubtaskRepo) GetByID(ctx context.Context, id uint) (*models.Subtask, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if st, ok := r.subtasks[id]; ok {
		copied := *st
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSubtaskRepo) ListByTask(ctx context.Context, taskID uint) ([]*models.Subtask, error) {
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

func (r *fakeSubtaskRepo) Save(ctx context.Context, subtask *models.Subtask) error {
	if _, ok := r.subtasks[subtask.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *subtask
	r.subtasks[subtask.ID] = &copied
	return nil
}

func (r *fakeSubtaskRepo) DeleteByIDs(ctx context.Context, ids []uint) error {
	for _, id := range ids {
		delete(r.subtasks, id)
	}
	return nil
}

func (r *fakeSubtaskRepo) SetCompleted(ctx context.Context, ids []uint, completed bool) error {
	for _, id := range ids {
		if st, ok := r.subtasks[id]; ok {
			st.IsCompleted = completed
		}
	}
	return nil
}

type fakeTaskRepo struct {
	nextID   uint
	tasks    map[uint]*models.Task
	subtasks *fakeSubtaskRepo
}

func newFakeTaskRepo(subtasks *fakeSubtaskRepo) *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[uint]*models.Task{}, subtasks: subtasks}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *models.Task) error {
	r.nextID++
	task.ID = r.nextID
	task.CreatedAt = time.Now().UTC()
	task.UpdatedAt = task.CreatedAt
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	t, ok := r.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTaskRepo) GetByIDWithSubtasks(ctx context.Context, userID, taskID uint) (*models.Task, error) {
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

// ListByUser mirrors the SQL builder: trimmed LIKE over title and
// description, priority match, due_at within now+N days, and the same four
// sort orders (NULL due dates last).
func (r *fakeTaskRepo) ListByUser(ctx context.Context, userID uint, filter repositories.TaskListFilter) ([]*models.Task, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	now := time.Now().UTC()

	var out []*models.Task
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		if filter.DueWithinDays != nil && *filter.DueWithinDays >= 0 {
			until := now.AddDate(0, 0, *filter.DueWithinDays)
			if t.DueAt == nil || t.DueAt.After(until) {
				continue
			}
		}
		copied := *t
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	switch filter.SortBy {
	case "priority":
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Priority != out[j].Priority {
				return out[i].Priority < out[j].Priority
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case "due_at":
		sort.SliceStable(out, func(i, j int) bool {
			if (out[i].DueAt == nil) != (out[j].DueAt == nil) {
				return out[i].DueAt != nil
			}
			if out[i].DueAt == nil {
				return false
			}
			return out[i].DueAt.Before(*out[j].DueAt)
		})
	case "estimated_minutes":
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].EstimatedMinutes != out[j].EstimatedMinutes {
				return out[i].EstimatedMinutes < out[j].EstimatedMinutes
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out, nil
}

func (r *fakeTaskRepo) Save(ctx context.Context, task *models.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) DeleteCascade(ctx context.Context, task *models.Task) error {
	for id, st := range r.subtasks.subtasks {
		if st.TaskID == task.ID {
			delete(r.subtasks.subtasks, id)
		}
	}
	delete(r.tasks, task.ID)
	return nil
}

func (r *fakeTaskRepo) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var expired []*models.Task
	for _, t := range r.tasks {
		if t.IsCompleted && t.UpdatedAt.Before(cutoff) {
			expired = append(expired, t)
		}
	}
	for _, t := range expired {
		r.DeleteCascade(ctx, t)
	}
	return int64(len(expired)), nil
}
