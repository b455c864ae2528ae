package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Prathamesh-chougale-17/status-study/internal/auth"
	"github.com/Prathamesh-chougale-17/status-study/internal/store"
)

// Deps carries everything the route surface needs.
type Deps struct {
	Auth          *auth.Service
	AdminEmail    string
	AdminPassword string

	Topics      store.TopicStore
	Resources   store.ResourceStore
	Subtopics   store.SubtopicStore
	Tasks       store.TaskStore
	Progress    store.ProgressStore
	Suggestions store.SuggestionStore

	Log *zap.Logger
}

// NewRouter wires all routes. Auth bootstrap endpoints are open; everything
// else under /api sits behind RequireAuth.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogging(d.Log))
	router.HandleFunc("/", HealthCheck).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/sign-up", SignUp(d.Auth, d.Log)).Methods("POST")
	api.HandleFunc("/auth/sign-in", SignIn(d.Auth, d.Log)).Methods("POST")
	api.HandleFunc("/auth/sign-out", SignOut(d.Auth, d.Log)).Methods("POST")
	api.HandleFunc("/auth-status", AuthStatus(d.Auth, d.Log)).Methods("GET")
	api.HandleFunc("/create-admin", CreateAdmin(d.Auth, d.AdminEmail, d.AdminPassword, d.Log)).Methods("GET", "POST")

	protected := api.PathPrefix("").Subrouter()
	protected.Use(RequireAuth(d.Auth, d.Log))

	protected.HandleFunc("/topics", ListTopics(d.Topics, d.Log)).Methods("GET")
	protected.HandleFunc("/topics", CreateTopic(d.Topics, d.Log)).Methods("POST")
	protected.HandleFunc("/topics/{id}", GetTopic(d.Topics, d.Log)).Methods("GET")
	protected.HandleFunc("/topics/{id}", UpdateTopic(d.Topics, d.Log)).Methods("PUT")
	protected.HandleFunc("/topics/{id}", DeleteTopic(d.Topics, d.Log)).Methods("DELETE")

	protected.HandleFunc("/subtopics", ListSubtopics(d.Subtopics, d.Log)).Methods("GET")
	protected.HandleFunc("/subtopics", CreateSubtopic(d.Subtopics, d.Log)).Methods("POST")
	protected.HandleFunc("/subtopics/{id}", GetSubtopic(d.Subtopics, d.Log)).Methods("GET")
	protected.HandleFunc("/subtopics/{id}", UpdateSubtopic(d.Subtopics, d.Log)).Methods("PUT")
	protected.HandleFunc("/subtopics/{id}", DeleteSubtopic(d.Subtopics, d.Log)).Methods("DELETE")

	protected.HandleFunc("/resources", CreateResource(d.Resources, d.Log)).Methods("POST")
	protected.HandleFunc("/resources/{id}", UpdateResource(d.Resources, d.Log)).Methods("PUT")
	protected.HandleFunc("/resources/{id}", DeleteResource(d.Resources, d.Log)).Methods("DELETE")

	// Register before /tasks/{id} so the literal path wins.
	protected.HandleFunc("/tasks/suggestions", TaskSuggestions(d.Topics, d.Log)).Methods("GET")
	protected.HandleFunc("/tasks", ListTasks(d.Tasks, d.Log)).Methods("GET")
	protected.HandleFunc("/tasks", CreateTask(d.Tasks, d.Log)).Methods("POST")
	protected.HandleFunc("/tasks/{id}", GetTask(d.Tasks, d.Log)).Methods("GET")
	protected.HandleFunc("/tasks/{id}", UpdateTask(d.Tasks, d.Log)).Methods("PUT")
	protected.HandleFunc("/tasks/{id}", DeleteTask(d.Tasks, d.Log)).Methods("DELETE")

	protected.HandleFunc("/kanban/suggestions", KanbanSuggestions(d.Suggestions, d.Log)).Methods("GET")
	protected.HandleFunc("/kanban", ListTasks(d.Tasks, d.Log)).Methods("GET")
	protected.HandleFunc("/kanban", CreateKanbanTask(d.Tasks, d.Log)).Methods("POST")
	protected.HandleFunc("/kanban", BulkMoveTasks(d.Tasks, d.Log)).Methods("PUT")

	protected.HandleFunc("/progress", GetProgress(d.Progress, d.Log)).Methods("GET")
	protected.HandleFunc("/progress", UpsertProgress(d.Progress, d.Log)).Methods("POST", "PUT")

	return router
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"message": "the server is up and running"})
}
