package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edunotice/edunotice-backend/internal/models"
	"github.com/edunotice/edunotice-backend/internal/services"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type memAnnouncementStore struct {
	docs map[string]models.Announcement
}

func (m *memAnnouncementStore) Find(ctx context.Context, filter bson.M) ([]models.Announcement, error) {
	var out []models.Announcement
	for _, a := range m.docs {
		if cond, ok := filter["expiration_date"]; ok {
			if a.ExpirationDate < cond.(bson.M)["$gte"].(string) {
				continue
			}
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memAnnouncementStore) InsertOne(ctx context.Context, announcement *models.Announcement) (string, error) {
	announcement.ID = primitive.NewObjectID()
	id := announcement.ID.Hex()
	m.docs[id] = *announcement
	return id, nil
}

func (m *memAnnouncementStore) UpdateOne(ctx context.Context, id string, fields bson.M) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, nil
	}
	doc, ok := m.docs[id]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["message"]; ok {
		doc.Message = v.(string)
	}
	if v, ok := fields["expiration_date"]; ok {
		doc.ExpirationDate = v.(string)
	}
	if v, ok := fields["updated_at"]; ok {
		doc.UpdatedAt = v.(string)
	}
	m.docs[id] = doc
	return 1, nil
}

func (m *memAnnouncementStore) DeleteOne(ctx context.Context, id string) (int64, error) {
	if _, ok := m.docs[id]; !ok {
		return 0, nil
	}
	delete(m.docs, id)
	return 1, nil
}

type memTeacherStore struct {
	teachers map[string]models.Teacher
}

func (m *memTeacherStore) FindOne(ctx context.Context, username string) (*models.Teacher, error) {
	t, ok := m.teachers[username]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &t, nil
}

func (m *memTeacherStore) InsertOne(ctx context.Context, teacher *models.Teacher) error {
	m.teachers[teacher.Username] = *teacher
	return nil
}

func (m *memTeacherStore) Find(ctx context.Context) ([]models.Teacher, error) {
	var out []models.Teacher
	for _, t := range m.teachers {
		t.HPassword = ""
		out = append(out, t)
	}
	return out, nil
}

// newTestRouter wires the handlers over in-memory stores with the same
// routes cmd/main.go registers.
func newTestRouter() (*mux.Router, *memAnnouncementStore) {
	store := &memAnnouncementStore{docs: make(map[string]models.Announcement)}
	teacherStore := &memTeacherStore{teachers: map[string]models.Teacher{
		"tanaka": {Username: "tanaka", Role: "teacher"},
		"yamada": {Username: "yamada", Role: "student"},
	}}

	teacherService := services.NewTeacherService(teacherStore)
	announcementService := services.NewAnnouncementService(store, teacherService)

	announcementHandler := NewAnnouncementHandler(announcementService)
	teacherHandler := NewTeacherHandler(teacherService)

	router := mux.NewRouter()
	router.HandleFunc("/announcements", announcementHandler.GetAnnouncements).Methods("GET")
	router.HandleFunc("/announcements/add", announcementHandler.AddAnnouncement).Methods("POST")
	router.HandleFunc("/announcements/update/{announcementID}", announcementHandler.UpdateAnnouncement).Methods("PUT")
	router.HandleFunc("/announcements/delete/{announcementID}", announcementHandler.DeleteAnnouncement).Methods("DELETE")
	router.HandleFunc("/teachers", teacherHandler.CreateTeacher).Methods("POST")
	router.HandleFunc("/teachers", teacherHandler.GetTeachers).Methods("GET")
	router.HandleFunc("/login", teacherHandler.Login).Methods("POST")
	return router, store
}

func doRequest(t *testing.T, router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func addAnnouncement(t *testing.T, router *mux.Router, body string) string {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/announcements/add?teacher_username=tanaka", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode add response: %v", err)
	}
	if resp["id"] == "" {
		t.Fatal("add response has empty id")
	}
	return resp["id"]
}

func TestGetAnnouncementsPublic(t *testing.T) {
	router, _ := newTestRouter()
	addAnnouncement(t, router, `{"message":"library closed","expiration_date":"2999-12-31"}`)
	addAnnouncement(t, router, `{"message":"old notice","expiration_date":"2000-01-01"}`)

	rec := doRequest(t, router, http.MethodGet, "/announcements", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}

	var listed []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 active announcement, got %d", len(listed))
	}
	if listed[0]["message"] != "library closed" {
		t.Errorf("unexpected announcement: %v", listed[0])
	}
	if id, _ := listed[0]["id"].(string); id == "" {
		t.Error("listed announcement has no public id field")
	}
	if _, ok := listed[0]["_id"]; ok {
		t.Error("internal _id field leaked into the response")
	}
}

func TestGetAnnouncementsEmptyArray(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(t, router, http.MethodGet, "/announcements", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestAddAuthFailures(t *testing.T) {
	router, store := newTestRouter()
	body := `{"message":"x","expiration_date":"2999-12-31"}`

	rec := doRequest(t, router, http.MethodPost, "/announcements/add?teacher_username=ghost", body)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown identity: got %d, want 401", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/announcements/add?teacher_username=yamada", body)
	if rec.Code != http.StatusForbidden {
		t.Errorf("student identity: got %d, want 403", rec.Code)
	}

	if len(store.docs) != 0 {
		t.Errorf("rejected adds still created %d records", len(store.docs))
	}
}

func TestUpdateAnnouncement(t *testing.T) {
	router, store := newTestRouter()
	id := addAnnouncement(t, router, `{"message":"v1","expiration_date":"2999-12-31"}`)

	rec := doRequest(t, router, http.MethodPut, "/announcements/update/"+id+"?teacher_username=tanaka", `{"message":"v2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
	}
	if doc := store.docs[id]; doc.Message != "v2" || doc.ExpirationDate != "2999-12-31" {
		t.Errorf("partial update went wrong: %+v", doc)
	}

	rec = doRequest(t, router, http.MethodPut, "/announcements/update/"+primitive.NewObjectID().Hex()+"?teacher_username=tanaka", `{"message":"v2"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: got %d, want 404", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPut, "/announcements/update/"+id+"?teacher_username=ghost", `{"message":"v3"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown identity: got %d, want 401", rec.Code)
	}
}

func TestDeleteAnnouncementTwice(t *testing.T) {
	router, _ := newTestRouter()
	id := addAnnouncement(t, router, `{"message":"bye","expiration_date":"2999-12-31"}`)

	rec := doRequest(t, router, http.MethodDelete, "/announcements/delete/"+id+"?teacher_username=tanaka", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("first delete returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodDelete, "/announcements/delete/"+id+"?teacher_username=tanaka", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: got %d, want 404", rec.Code)
	}
}

func TestTeacherAccountRoundTrip(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(t, router, http.MethodPost, "/teachers", `{"username":"suzuki","fullname":"Suzuki Ichiro","password":"s3cret"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create account returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, "/login", `{"username":"suzuki","password":"s3cret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, "/login", `{"username":"suzuki","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad password: got %d, want 401", rec.Code)
	}

	// A freshly created account can immediately publish announcements.
	rec = doRequest(t, router, http.MethodPost, "/announcements/add?teacher_username=suzuki", `{"message":"hi","expiration_date":"2999-12-31"}`)
	if rec.Code != http.StatusCreated {
		t.Errorf("new teacher add: got %d, want 201", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/teachers", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list accounts returned %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "s3cret") || strings.Contains(rec.Body.String(), `"password"`) {
		t.Errorf("account listing leaked password material: %s", rec.Body.String())
	}
}
