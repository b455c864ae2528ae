package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Prathamesh-chougale-17/status-study/internal/errs"
	"github.com/Prathamesh-chougale-17/status-study/internal/models"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

// memStore is an in-memory stand-in for the MongoDB stores, preserving their
// observable behavior: id validation, defaults, timestamps and the
// canonical/embedded subtopic sync.
type memStore struct {
	topics    map[primitive.ObjectID]*models.Topic
	subtopics map[primitive.ObjectID]*models.Subtopic
	tasks     map[primitive.ObjectID]*models.Task
	progress  map[models.ProgressKey]*models.Progress
}

func newMemStore() *memStore {
	return &memStore{
		topics:    map[primitive.ObjectID]*models.Topic{},
		subtopics: map[primitive.ObjectID]*models.Subtopic{},
		tasks:     map[primitive.ObjectID]*models.Task{},
		progress:  map[models.ProgressKey]*models.Progress{},
	}
}

func parseMemID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errs.ErrInvalidID
	}
	return oid, nil
}

type memTopics struct{ m *memStore }

var _ store.TopicStore = (*memTopics)(nil)

func (s *memTopics) List(context.Context) ([]models.Topic, error) {
	list := []models.Topic{}
	for _, t := range s.m.topics {
		list = append(list, *t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func (s *memTopics) Get(_ context.Context, id string) (*models.Topic, error) {
	oid, err := parseMemID(id)
	if err != nil {
		return nil, err
	}
	t, ok := s.m.topics[oid]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *t
	return &cpy, nil
}

func (s *memTopics) Create(_ context.Context, t *models.Topic) error {
	now := time.Now()
	t.ID = primitive.NewObjectID()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Resources == nil {
		t.Resources = []models.Resource{}
	}
	if t.Subtopics == nil {
		t.Subtopics = []models.Subtopic{}
	}
	cpy := *t
	s.m.topics[t.ID] = &cpy
	return nil
}

func (s *memTopics) Update(_ context.Context, id string, patch store.Patch) error {
	oid, err := parseMemID(id)
	if err != nil {
		return err
	}
	t, ok := s.m.topics[oid]
	if !ok {
		return errs.ErrNotFound
	}
	for k, v := range patch {
		switch k {
		case "title":
			t.Title = v.(string)
		case "description":
			t.Description = v.(string)
		case "icon":
			t.Icon = v.(string)
		case "color":
			t.Color = v.(string)
		case "category":
			t.Category = v.(string)
		case "progress":
			t.Progress = int(asFloat(v))
		}
	}
	t.UpdatedAt = time.Now()
	return nil
}

func (s *memTopics) Delete(_ context.Context, id string) error {
	oid, err := parseMemID(id)
	if err != nil {
		return err
	}
	if _, ok := s.m.topics[oid]; !ok {
		return errs.ErrNotFound
	}
	delete(s.m.topics, oid)
	return nil
}

type memResources struct{ m *memStore }

var _ store.ResourceStore = (*memResources)(nil)

func (s *memResources) Add(_ context.Context, topicID string, r *models.Resource) error {
	oid, err := parseMemID(topicID)
	if err != nil {
		return err
	}
	t, ok := s.m.topics[oid]
	if !ok {
		return errs.ErrNotFound
	}
	now := time.Now()
	rid, _ := uuid.NewV4()
	r.ID = rid.String()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.Status == "" {
		r.Status = "not-started"
	}
	if r.Priority == "" {
		r.Priority = "medium"
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	t.Resources = append(t.Resources, *r)
	return nil
}

func (s *memResources) Update(_ context.Context, resourceID string, patch store.Patch) error {
	for _, t := range s.m.topics {
		for i := range t.Resources {
			if t.Resources[i].ID != resourceID {
				continue
			}
			r := &t.Resources[i]
			for k, v := range patch {
				switch k {
				case "title":
					r.Title = v.(string)
				case "description":
					r.Description = v.(string)
				case "url":
					r.URL = v.(string)
				case "type":
					r.Type = v.(string)
				case "status":
					r.Status = v.(string)
				case "priority":
					r.Priority = v.(string)
				case "tags":
					r.Tags = v.([]string)
				case "notes":
					r.Notes = v.(string)
				}
			}
			r.UpdatedAt = time.Now()
			return nil
		}
	}
	return errs.ErrNotFound
}

func (s *memResources) Remove(_ context.Context, resourceID string) error {
	for _, t := range s.m.topics {
		for i := range t.Resources {
			if t.Resources[i].ID == resourceID {
				t.Resources = append(t.Resources[:i], t.Resources[i+1:]...)
				return nil
			}
		}
	}
	return errs.ErrNotFound
}

type memSubtopics struct{ m *memStore }

var _ store.SubtopicStore = (*memSubtopics)(nil)

func (s *memSubtopics) Create(_ context.Context, sub *models.Subtopic) error {
	topicOID, err := parseMemID(sub.TopicID)
	if err != nil {
		return err
	}
	t, ok := s.m.topics[topicOID]
	if !ok {
		return errs.ErrNotFound
	}
	now := time.Now()
	sub.ID = primitive.NewObjectID()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if sub.Links == nil {
		sub.Links = []models.Link{}
	}
	cpy := *sub
	s.m.subtopics[sub.ID] = &cpy
	t.Subtopics = append(t.Subtopics, *sub)
	return nil
}

func (s *memSubtopics) ListByTopic(_ context.Context, topicID string) ([]models.Subtopic, error) {
	list := []models.Subtopic{}
	for _, sub := range s.m.subtopics {
		if sub.TopicID == topicID {
			list = append(list, *sub)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (s *memSubtopics) Get(_ context.Context, id string) (*models.Subtopic, error) {
	oid, err := parseMemID(id)
	if err != nil {
		return nil, err
	}
	sub, ok := s.m.subtopics[oid]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *sub
	return &cpy, nil
}

func (s *memSubtopics) Update(_ context.Context, id string, patch store.Patch) (*models.Subtopic, error) {
	oid, err := parseMemID(id)
	if err != nil {
		return nil, err
	}
	sub, ok := s.m.subtopics[oid]
	if !ok {
		return nil, errs.ErrNotFound
	}
	for k, v := range patch {
		switch k {
		case "title":
			sub.Title = v.(string)
		case "description":
			sub.Description = v.(string)
		case "notes":
			sub.Notes = v.(string)
		case "links":
			sub.Links = v.([]models.Link)
		}
	}
	sub.UpdatedAt = time.Now()
	s.syncEmbedded(sub)
	cpy := *sub
	return &cpy, nil
}

func (s *memSubtopics) Delete(_ context.Context, id string) error {
	oid, err := parseMemID(id)
	if err != nil {
		return err
	}
	sub, ok := s.m.subtopics[oid]
	if !ok {
		return errs.ErrNotFound
	}
	delete(s.m.subtopics, oid)
	topicOID, err := parseMemID(sub.TopicID)
	if err != nil {
		return err
	}
	if t, ok := s.m.topics[topicOID]; ok {
		for i := range t.Subtopics {
			if t.Subtopics[i].ID == oid {
				t.Subtopics = append(t.Subtopics[:i], t.Subtopics[i+1:]...)
				break
			}
		}
	}
	return nil
}

func (s *memSubtopics) syncEmbedded(sub *models.Subtopic) {
	topicOID, err := parseMemID(sub.TopicID)
	if err != nil {
		return
	}
	t, ok := s.m.topics[topicOID]
	if !ok {
		return
	}
	for i := range t.Subtopics {
		if t.Subtopics[i].ID == sub.ID {
			t.Subtopics[i] = *sub
			return
		}
	}
}

type memTasks struct{ m *memStore }

var _ store.TaskStore = (*memTasks)(nil)

func (s *memTasks) List(context.Context) ([]models.Task, error) {
	list := []models.Task{}
	for _, t := range s.m.tasks {
		list = append(list, *t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (s *memTasks) Get(_ context.Context, id string) (*models.Task, error) {
	oid, err := parseMemID(id)
	if err != nil {
		return nil, err
	}
	t, ok := s.m.tasks[oid]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cpy := *t
	return &cpy, nil
}

func (s *memTasks) Create(_ context.Context, t *models.Task) error {
	now := time.Now()
	t.ID = primitive.NewObjectID()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Tags == nil {
		t.Tags = []string{}
	}
	cpy := *t
	s.m.tasks[t.ID] = &cpy
	return nil
}

func (s *memTasks) Update(_ context.Context, id string, patch store.Patch) error {
	oid, err := parseMemID(id)
	if err != nil {
		return err
	}
	t, ok := s.m.tasks[oid]
	if !ok {
		return errs.ErrNotFound
	}
	for k, v := range patch {
		switch k {
		case "name":
			t.Name = v.(string)
		case "description":
			t.Description = v.(string)
		case "column":
			t.Column = v.(string)
		case "priority":
			t.Priority = v.(string)
		case "category":
			t.Category = v.(string)
		}
	}
	t.UpdatedAt = time.Now()
	return nil
}

func (s *memTasks) Delete(_ context.Context, id string) error {
	oid, err := parseMemID(id)
	if err != nil {
		return err
	}
	if _, ok := s.m.tasks[oid]; !ok {
		return errs.ErrNotFound
	}
	delete(s.m.tasks, oid)
	return nil
}

func (s *memTasks) UpdateColumns(_ context.Context, moves []store.ColumnMove) (int64, error) {
	var modified int64
	for _, move := range moves {
		oid, err := parseMemID(move.ID)
		if err != nil {
			return 0, err
		}
		if t, ok := s.m.tasks[oid]; ok {
			t.Column = move.Column
			t.UpdatedAt = time.Now()
			modified++
		}
	}
	return modified, nil
}

type memProgress struct{ m *memStore }

var _ store.ProgressStore = (*memProgress)(nil)

func (s *memProgress) GetOrCreate(_ context.Context, key models.ProgressKey) (*models.Progress, error) {
	if p, ok := s.m.progress[key]; ok {
		cpy := *p
		return &cpy, nil
	}
	p := &models.Progress{
		ID:        primitive.NewObjectID(),
		Year:      key.Year,
		Month:     key.Month,
		Week:      key.Week,
		Day:       key.Day,
		UpdatedAt: time.Now(),
	}
	s.m.progress[key] = p
	cpy := *p
	return &cpy, nil
}

func (s *memProgress) Upsert(_ context.Context, key models.ProgressKey, patch store.Patch) error {
	p, ok := s.m.progress[key]
	if !ok {
		p = &models.Progress{
			ID:    primitive.NewObjectID(),
			Year:  key.Year,
			Month: key.Month,
			Week:  key.Week,
			Day:   key.Day,
		}
		s.m.progress[key] = p
	}
	for k, v := range patch {
		switch k {
		case "yearProgress":
			p.YearProgress = int(asFloat(v))
		case "monthProgress":
			p.MonthProgress = int(asFloat(v))
		case "weekProgress":
			p.WeekProgress = int(asFloat(v))
		case "dayProgress":
			p.DayProgress = int(asFloat(v))
		}
	}
	p.UpdatedAt = time.Now()
	return nil
}

type memSuggestions struct{ m *memStore }

var _ store.SuggestionStore = (*memSuggestions)(nil)

func (s *memSuggestions) Suggestions(ctx context.Context) (*models.Suggestions, error) {
	topics, _ := (&memTopics{m: s.m}).List(ctx)
	out := &models.Suggestions{
		Topics:    []models.TopicSuggestion{},
		Resources: []models.ResourceSuggestion{},
		Subtopics: []models.SubtopicSuggestion{},
	}
	for _, t := range topics {
		out.Topics = append(out.Topics, models.TopicSuggestion{
			ID: t.ID, Title: t.Title, Category: t.Category, Icon: t.Icon, Color: t.Color,
		})
		for _, r := range t.Resources {
			out.Resources = append(out.Resources, models.ResourceSuggestion{
				ID: r.ID, Title: r.Title, Type: r.Type, Status: r.Status,
				Priority: r.Priority, TopicID: t.ID, TopicTitle: t.Title,
			})
		}
		for _, sub := range t.Subtopics {
			out.Subtopics = append(out.Subtopics, models.SubtopicSuggestion{
				ID: sub.ID, Title: sub.Title, TopicID: t.ID, TopicTitle: t.Title,
			})
		}
	}
	return out, nil
}

// asFloat tolerates the number types a decoded JSON patch can carry.
func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
