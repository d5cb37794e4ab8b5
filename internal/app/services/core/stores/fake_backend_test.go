package stores

import (
	"context"
	"dentclinic-service/internal/app/config"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/app/services/backend"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// fakeBackend is an in-memory clinic REST backend.
type fakeBackend struct {
	mu             sync.Mutex
	nextID         int64
	patients       []models.Patient
	expenses       []models.Expense
	expensePatches []map[string]interface{}
	appointments   []models.Appointment
	bills          []models.Bill
	failLists      map[string]int
	failWrites     int
	writes         int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 100, failLists: make(map[string]int)}
}

func (f *fakeBackend) failList(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failLists[path] = status
}

func (f *fakeBackend) failWritesWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWrites = status
}

func (f *fakeBackend) lastExpensePatch() map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.expensePatches) == 0 {
		return nil
	}
	return f.expensePatches[len(f.expensePatches)-1]
}

func (f *fakeBackend) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func (f *fakeBackend) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			status, failing := f.failLists[req.URL.Path]
			if req.Method != http.MethodGet {
				f.writes++
				status, failing = f.failWrites, f.failWrites != 0
			}
			f.mu.Unlock()
			if failing {
				w.WriteHeader(status)
				io.WriteString(w, `{"error":"backend refused"}`)
				return
			}
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/patients", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.patients)
	})
	r.Post("/patients", func(w http.ResponseWriter, req *http.Request) {
		var patient models.Patient
		json.NewDecoder(req.Body).Decode(&patient)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.nextID++
		patient.ID = f.nextID
		f.patients = append(f.patients, patient)
		writeJSON(w, http.StatusCreated, patient)
	})
	r.Put("/patients/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := pathID(req)
		var patch map[string]interface{}
		json.NewDecoder(req.Body).Decode(&patch)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.patients {
			if f.patients[i].ID == id {
				if name, ok := patch["fullName"].(string); ok {
					f.patients[i].FullName = name
				}
				writeJSON(w, http.StatusOK, f.patients[i])
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Patient not found"})
	})
	r.Delete("/patients/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := pathID(req)
		f.mu.Lock()
		defer f.mu.Unlock()
		kept := f.patients[:0]
		for _, p := range f.patients {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		f.patients = kept
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/expenses", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.expenses)
	})
	r.Get("/expenses/pending", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		pending := make([]models.Expense, 0)
		for _, e := range f.expenses {
			if !e.Approved {
				pending = append(pending, e)
			}
		}
		writeJSON(w, http.StatusOK, pending)
	})
	r.Post("/expenses", func(w http.ResponseWriter, req *http.Request) {
		var expense models.Expense
		json.NewDecoder(req.Body).Decode(&expense)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.nextID++
		expense.ID = f.nextID
		f.expenses = append(f.expenses, expense)
		writeJSON(w, http.StatusCreated, expense)
	})
	r.Put("/expenses/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := pathID(req)
		var patch map[string]interface{}
		json.NewDecoder(req.Body).Decode(&patch)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.expensePatches = append(f.expensePatches, patch)
		for i := range f.expenses {
			if f.expenses[i].ID == id {
				if description, ok := patch["description"].(string); ok {
					f.expenses[i].Description = description
				}
				if amount, ok := patch["amount"].(float64); ok {
					f.expenses[i].Amount = amount
				}
				if date, ok := patch["date"].(string); ok {
					f.expenses[i].Date = date
				}
				writeJSON(w, http.StatusOK, f.expenses[i])
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Expense not found"})
	})
	r.Delete("/expenses/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := pathID(req)
		f.mu.Lock()
		defer f.mu.Unlock()
		kept := f.expenses[:0]
		for _, e := range f.expenses {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		f.expenses = kept
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/expenses/{id}/approve", func(w http.ResponseWriter, req *http.Request) {
		f.setApproval(w, pathID(req), true)
	})
	r.Post("/expenses/{id}/reject", func(w http.ResponseWriter, req *http.Request) {
		f.setApproval(w, pathID(req), false)
	})

	r.Get("/appointments", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.appointments)
	})
	r.Put("/appointments/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := pathID(req)
		var patch map[string]interface{}
		json.NewDecoder(req.Body).Decode(&patch)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.appointments {
			if f.appointments[i].ID == id {
				if status, ok := patch["status"].(string); ok {
					f.appointments[i].Status = status
				}
				if date, ok := patch["appointmentDate"].(string); ok {
					f.appointments[i].AppointmentDate = date
				}
				writeJSON(w, http.StatusOK, f.appointments[i])
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Appointment not found"})
	})

	r.Get("/billing", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.bills)
	})
	r.Get("/users", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []models.User{})
	})
	r.Get("/medications", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []models.Medication{})
	})
	return r
}

func (f *fakeBackend) setApproval(w http.ResponseWriter, id int64, approved bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.expenses {
		if f.expenses[i].ID == id {
			if approved {
				f.expenses[i].Approved = true
			} else {
				f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			}
			w.WriteHeader(http.StatusOK)
			io.WriteString(w, `{"success":true}`)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Expense not found"})
}

func pathID(req *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type recordingNotifier struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) last() models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return models.Notification{}
	}
	return r.notifications[len(r.notifications)-1]
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notifications)
}

func newTestProvider(t *testing.T, fake *fakeBackend) (*Provider, *recordingNotifier) {
	t.Helper()
	server := httptest.NewServer(fake.router())
	t.Cleanup(server.Close)

	client := backend.NewClient(config.AppBackend{BaseUrl: server.URL, TimeoutInSeconds: 5}, zap.NewNop())
	notifier := &recordingNotifier{}
	provider := NewProvider(Clients{
		Patients:     backend.NewPatientClient(client),
		Appointments: backend.NewAppointmentClient(client),
		Expenses:     backend.NewExpenseClient(client),
		Users:        backend.NewUserClient(client),
		Bills:        backend.NewBillClient(client),
		Medications:  backend.NewMedicationClient(client),
	}, notifier, zap.NewNop())
	return provider, notifier
}
