package restapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/hivclinic/internal/adapters/session"
	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/domain/providers"
	"github.com/zatekoja/hivclinic/internal/infrastructure/clients/clinicapi"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
)

// fakeBackend is an httptest server that counts hits per route pattern
type fakeBackend struct {
	*httptest.Server
	mu   sync.Mutex
	hits map[string]int
}

func newFakeBackend(t *testing.T, routes map[string]http.HandlerFunc) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{hits: make(map[string]int)}
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		pattern, handler := pattern, handler
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			fb.mu.Lock()
			fb.hits[pattern]++
			fb.mu.Unlock()
			handler(w, r)
		})
	}
	fb.Server = httptest.NewServer(mux)
	t.Cleanup(fb.Close)
	return fb
}

func (fb *fakeBackend) count(pattern string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.hits[pattern]
}

func (fb *fakeBackend) total() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	n := 0
	for _, v := range fb.hits {
		n += v
	}
	return n
}

func newTestSession(t *testing.T) providers.SessionStore {
	t.Helper()
	return session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
}

func newTestClient(fb *fakeBackend, store providers.SessionStore) *clinicapi.Client {
	return clinicapi.NewClient(fb.URL, store, clinicapi.WithHTTPClient(fb.Client()))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func failWith(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
}

func TestAppointmentAdapter_Book(t *testing.T) {
	req := entities.BookAppointmentRequest{
		CustomerID: 7,
		DoctorID:   3,
		Type:       entities.AppointmentTypeOnline,
		Note:       "Tư vấn lần đầu",
		Datetime:   "2024-07-10T09:30:00",
	}

	t.Run("echoes the created appointment", func(t *testing.T) {
		store := newTestSession(t)
		require.NoError(t, store.SetToken(context.Background(), "tok"))

		fb := newFakeBackend(t, map[string]http.HandlerFunc{
			"POST /appointment/book": func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				var body entities.BookAppointmentRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, req, body)
				writeJSON(w, http.StatusCreated, entities.Appointment{
					AppointmentID: 55,
					CustomerID:    body.CustomerID,
					DoctorID:      body.DoctorID,
					Type:          body.Type,
					Datetime:      body.Datetime,
					Note:          body.Note,
					Status:        entities.AppointmentStatusPending,
				})
			},
		})

		adapter := NewAppointmentAdapter(newTestClient(fb, store), NewFallbackPolicy(true, nil))
		got, err := adapter.Book(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, int64(55), got.AppointmentID)
		assert.Equal(t, "Tư vấn lần đầu", got.Note)
		assert.Equal(t, entities.AppointmentStatusPending, got.Status)
	})

	t.Run("bare 500 yields generic message", func(t *testing.T) {
		fb := newFakeBackend(t, map[string]http.HandlerFunc{
			"POST /appointment/book": failWith(http.StatusInternalServerError),
		})

		adapter := NewAppointmentAdapter(newTestClient(fb, newTestSession(t)), NewFallbackPolicy(true, nil))
		got, err := adapter.Book(context.Background(), req)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, "Book appointment failed: 500", err.Error())
		assert.True(t, apperrors.IsStatus(err, http.StatusInternalServerError))
	})

	t.Run("backend message is surfaced", func(t *testing.T) {
		fb := newFakeBackend(t, map[string]http.HandlerFunc{
			"POST /appointment/book": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusConflict, map[string]string{"message": "Bác sĩ đã có lịch vào thời gian này"})
			},
		})

		adapter := NewAppointmentAdapter(newTestClient(fb, newTestSession(t)), NewFallbackPolicy(true, nil))
		_, err := adapter.Book(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, "Bác sĩ đã có lịch vào thời gian này", err.Error())
	})

	t.Run("invalid input never reaches the backend", func(t *testing.T) {
		fb := newFakeBackend(t, map[string]http.HandlerFunc{
			"POST /appointment/book": failWith(http.StatusInternalServerError),
		})
		adapter := NewAppointmentAdapter(newTestClient(fb, newTestSession(t)), NewFallbackPolicy(true, nil))

		bad := []entities.BookAppointmentRequest{
			{DoctorID: 3, Type: "ONLINE", Datetime: "2024-07-10T09:30:00"},
			{CustomerID: 7, Type: "ONLINE", Datetime: "2024-07-10T09:30:00"},
			{CustomerID: 7, DoctorID: 3, Type: "ONLINE", Datetime: "ngày mai"},
		}
		for _, b := range bad {
			_, err := adapter.Book(context.Background(), b)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		}
		assert.Equal(t, 0, fb.total())
	})
}

func TestAppointmentAdapter_StatusUpdates(t *testing.T) {
	var bodies []string
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"PUT /appointment/{id}/status": func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			bodies = append(bodies, strings.TrimSpace(string(raw)))
			assert.Equal(t, "12", r.PathValue("id"))
			writeJSON(w, http.StatusOK, map[string]interface{}{"appointmentId": 12, "status": "CANCELLED"})
		},
	})
	adapter := NewAppointmentAdapter(newTestClient(fb, newTestSession(t)), nil)

	_, err := adapter.UpdateStatus(context.Background(), 12, entities.AppointmentStatusConfirmed)
	require.NoError(t, err)
	got, err := adapter.Cancel(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, entities.AppointmentStatusCancelled, got.Status)

	assert.Equal(t, []string{`{"status":"CONFIRMED"}`, `{"status":"CANCELLED"}`}, bodies)

	_, err = adapter.UpdateStatus(context.Background(), 12, "ARCHIVED")
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 2, fb.count("PUT /appointment/{id}/status"))
}

func TestFallbackPolicy_ListOperations(t *testing.T) {
	routes := map[string]http.HandlerFunc{
		"GET /appointment/getAllAppointment":      failWith(http.StatusServiceUnavailable),
		"GET /blog/getBlogs":                      failWith(http.StatusInternalServerError),
		"GET /education-content":                  failWith(http.StatusInternalServerError),
		"GET /admin/dashboard/stats":              failWith(http.StatusBadGateway),
		"GET /admin/dashboard/recent-activities":  failWith(http.StatusBadGateway),
		"GET /admin/dashboard/system-overview":    failWith(http.StatusBadGateway),
		"GET /staff":                              failWith(http.StatusInternalServerError),
	}

	type op struct {
		name string
		call func(ctx context.Context, c *clinicapi.Client, store providers.SessionStore, p *FallbackPolicy) (interface{}, error)
	}
	ops := []op{
		{"appointments", func(ctx context.Context, c *clinicapi.Client, s providers.SessionStore, p *FallbackPolicy) (interface{}, error) {
			return NewAppointmentAdapter(c, p).List(ctx)
		}},
		{"blogs", func(ctx context.Context, c *clinicapi.Client, s providers.SessionStore, p *FallbackPolicy) (interface{}, error) {
			return NewBlogAdapter(c, s, p).List(ctx)
		}},
		{"education", func(ctx context.Context, c *clinicapi.Client, s providers.SessionStore, p *FallbackPolicy) (interface{}, error) {
			return NewEducationContentAdapter(c, s, p).List(ctx)
		}},
		{"dashboard stats", func(ctx context.Context, c *clinicapi.Client, s providers.SessionStore, p *FallbackPolicy) (interface{}, error) {
			return NewDashboardAdapter(c, p).Stats(ctx)
		}},
		{"recent activities", func(ctx context.Context, c *clinicapi.Client, s providers.SessionStore, p *FallbackPolicy) (interface{}, error) {
			return NewDashboardAdapter(c, p).RecentActivities(ctx, 3)
		}},
		{"system overview", func(ctx context.Context, c *clinicapi.Client, s providers.SessionStore, p *FallbackPolicy) (interface{}, error) {
			return NewDashboardAdapter(c, p).SystemOverview(ctx)
		}},
		{"staff", func(ctx context.Context, c *clinicapi.Client, s providers.SessionStore, p *FallbackPolicy) (interface{}, error) {
			auth := NewAuthAdapter(c, s)
			return NewStaffAdapter(c, auth, p).List(ctx)
		}},
	}

	for _, o := range ops {
		t.Run(o.name+" substitutes sample data when enabled", func(t *testing.T) {
			fb := newFakeBackend(t, routes)
			store := newTestSession(t)
			got, err := o.call(context.Background(), newTestClient(fb, store), store, NewFallbackPolicy(true, nil))
			require.NoError(t, err)
			assert.NotEmpty(t, got)
			assert.Equal(t, 1, fb.total())
		})

		t.Run(o.name+" propagates the error when disabled", func(t *testing.T) {
			fb := newFakeBackend(t, routes)
			store := newTestSession(t)
			_, err := o.call(context.Background(), newTestClient(fb, store), store, NewFallbackPolicy(false, nil))
			require.Error(t, err)
			assert.NotZero(t, apperrors.StatusCode(err))
		})

		t.Run(o.name+" never masks cancellation", func(t *testing.T) {
			fb := newFakeBackend(t, routes)
			store := newTestSession(t)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := o.call(ctx, newTestClient(fb, store), store, NewFallbackPolicy(true, nil))
			require.Error(t, err)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestFallbackPolicy_SampleIsFreshCopy(t *testing.T) {
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /staff": failWith(http.StatusInternalServerError),
	})
	store := newTestSession(t)
	client := newTestClient(fb, store)
	adapter := NewStaffAdapter(client, NewAuthAdapter(client, store), NewFallbackPolicy(true, nil))

	first, err := adapter.List(context.Background())
	require.NoError(t, err)
	first[0].Name = "đã sửa"

	second, err := adapter.List(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "đã sửa", second[0].Name)
}

func TestFallbackPolicy_TargetedReadsNeverFallBack(t *testing.T) {
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /appointment/{id}": failWith(http.StatusInternalServerError),
		"GET /staff/search":     failWith(http.StatusInternalServerError),
		"GET /blog/{id}":        failWith(http.StatusInternalServerError),
	})
	store := newTestSession(t)
	client := newTestClient(fb, store)
	policy := NewFallbackPolicy(true, nil)

	_, err := NewAppointmentAdapter(client, policy).GetByID(context.Background(), 1)
	assert.EqualError(t, err, "Get appointment failed: 500")

	_, err = NewStaffAdapter(client, NewAuthAdapter(client, store), policy).SearchByName(context.Background(), "Lan")
	assert.Error(t, err)

	_, err = NewBlogAdapter(client, store, policy).GetByID(context.Background(), 2)
	assert.Error(t, err)
}

func TestStaffAdapter_List_Idempotent(t *testing.T) {
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /staff": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []entities.Staff{
				{StaffID: 1, Name: "Nguyễn Thị Lan", Gender: entities.GenderFemale},
				{StaffID: 2, Name: "Trần Văn Hùng", Gender: entities.GenderMale, IsDeleted: true},
			})
		},
	})
	store := newTestSession(t)
	client := newTestClient(fb, store)
	adapter := NewStaffAdapter(client, NewAuthAdapter(client, store), NewFallbackPolicy(true, nil))

	first, err := adapter.List(context.Background())
	require.NoError(t, err)
	second, err := adapter.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
	assert.Equal(t, 2, fb.count("GET /staff"))
}

func TestStaffAdapter_Create(t *testing.T) {
	valid := entities.StaffRequest{
		Name:     "Lê Thị Mai",
		Email:    "mai.le@hivclinic.vn",
		Phone:    "0356789012",
		Gender:   entities.GenderFemale,
		Password: "matkhau1",
	}

	t.Run("registers then creates", func(t *testing.T) {
		store := newTestSession(t)
		require.NoError(t, store.SetToken(context.Background(), "admin-token"))

		fb := newFakeBackend(t, map[string]http.HandlerFunc{
			"POST /api/register": func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.Header.Get("Authorization"))
				var body entities.RegisterRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, entities.RoleStaff, body.Role)
				assert.Equal(t, valid.Name, body.FullName)
				assert.Equal(t, valid.Email, body.Email)
				assert.Equal(t, valid.Password, body.Password)
				writeJSON(w, http.StatusCreated, entities.RegisterResponse{UserID: 90, Role: entities.RoleStaff})
			},
			"POST /staff": func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
				writeJSON(w, http.StatusCreated, entities.Staff{StaffID: 9, Name: valid.Name, Email: valid.Email, Phone: valid.Phone, Gender: valid.Gender})
			},
		})
		client := newTestClient(fb, store)
		adapter := NewStaffAdapter(client, NewAuthAdapter(client, store), nil)

		got, err := adapter.Create(context.Background(), valid)
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.StaffID)
		assert.Equal(t, 1, fb.count("POST /api/register"))
		assert.Equal(t, 1, fb.count("POST /staff"))
	})

	t.Run("registration failure skips staff creation", func(t *testing.T) {
		store := newTestSession(t)
		fb := newFakeBackend(t, map[string]http.HandlerFunc{
			"POST /api/register": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email đã tồn tại"})
			},
			"POST /staff": func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusCreated, entities.Staff{StaffID: 1})
			},
		})
		client := newTestClient(fb, store)
		adapter := NewStaffAdapter(client, NewAuthAdapter(client, store), nil)

		got, err := adapter.Create(context.Background(), valid)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, "Không thể đăng ký tài khoản: Email đã tồn tại", apperrors.DisplayMessage(err))
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternal))
		assert.Equal(t, 0, fb.count("POST /staff"))
	})

	t.Run("validation runs before any call", func(t *testing.T) {
		store := newTestSession(t)
		fb := newFakeBackend(t, map[string]http.HandlerFunc{
			"POST /api/register": failWith(http.StatusInternalServerError),
			"POST /staff":        failWith(http.StatusInternalServerError),
		})
		client := newTestClient(fb, store)
		adapter := NewStaffAdapter(client, NewAuthAdapter(client, store), nil)

		cases := map[string]func(r *entities.StaffRequest){
			"bad phone":      func(r *entities.StaffRequest) { r.Phone = "0123456789" },
			"short password": func(r *entities.StaffRequest) { r.Password = "12345" },
			"bad email":      func(r *entities.StaffRequest) { r.Email = "mai.le" },
			"empty name":     func(r *entities.StaffRequest) { r.Name = "  " },
		}
		for name, mutate := range cases {
			req := valid
			mutate(&req)
			_, err := adapter.Create(context.Background(), req)
			assert.True(t, apperrors.IsValidation(err), name)
		}
		assert.Equal(t, 0, fb.total())
	})
}

func TestStaffAdapter_Update_OmitsEmptyPassword(t *testing.T) {
	var raw map[string]interface{}
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"PUT /staff/{id}": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			writeJSON(w, http.StatusOK, entities.Staff{StaffID: 4, Name: "Phạm Quốc Bảo"})
		},
	})
	store := newTestSession(t)
	client := newTestClient(fb, store)
	adapter := NewStaffAdapter(client, NewAuthAdapter(client, store), nil)

	_, err := adapter.Update(context.Background(), 4, entities.StaffRequest{
		Name:   "Phạm Quốc Bảo",
		Email:  "bao.pham@hivclinic.vn",
		Phone:  "0778901234",
		Gender: entities.GenderMale,
	})
	require.NoError(t, err)

	_, hasPassword := raw["password"]
	assert.False(t, hasPassword)
	assert.Equal(t, "Phạm Quốc Bảo", raw["name"])
	_, hasID := raw["staffId"]
	assert.False(t, hasID)
}

func TestStaffAdapter_Update_OmitsEmptyGender(t *testing.T) {
	var raw map[string]interface{}
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"PUT /staff/{id}": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			writeJSON(w, http.StatusOK, entities.Staff{StaffID: 9, Gender: entities.GenderFemale})
		},
	})
	store := newTestSession(t)
	client := newTestClient(fb, store)
	adapter := NewStaffAdapter(client, NewAuthAdapter(client, store), nil)

	_, err := adapter.Update(context.Background(), 9, entities.StaffRequest{
		Name:  "Lê Thị Mai",
		Email: "mai@hivclinic.vn",
		Phone: "0912345678",
	})
	require.NoError(t, err)

	_, hasGender := raw["gender"]
	assert.False(t, hasGender)
}

func TestStaffAdapter_FilteredLists(t *testing.T) {
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /staff/search": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Lan", r.URL.Query().Get("name"))
			writeJSON(w, http.StatusOK, []entities.Staff{{StaffID: 1}})
		},
		"GET /staff/gender/{gender}": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Female", r.PathValue("gender"))
			writeJSON(w, http.StatusOK, []entities.Staff{{StaffID: 1}, {StaffID: 3}})
		},
		"GET /staff/active":   func(w http.ResponseWriter, r *http.Request) { writeJSON(w, http.StatusOK, nil) },
		"GET /staff/inactive": func(w http.ResponseWriter, r *http.Request) { writeJSON(w, http.StatusOK, []entities.Staff{{StaffID: 4}}) },
	})
	store := newTestSession(t)
	client := newTestClient(fb, store)
	adapter := NewStaffAdapter(client, NewAuthAdapter(client, store), nil)
	ctx := context.Background()

	found, err := adapter.SearchByName(ctx, "Lan")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	women, err := adapter.ListByGender(ctx, entities.GenderFemale)
	require.NoError(t, err)
	assert.Len(t, women, 2)

	active, err := adapter.ListByActive(ctx, true)
	require.NoError(t, err)
	assert.NotNil(t, active)
	assert.Empty(t, active)

	inactive, err := adapter.ListByActive(ctx, false)
	require.NoError(t, err)
	assert.Len(t, inactive, 1)
}

func TestBlogAdapter_CreateUsesSessionStaffID(t *testing.T) {
	store := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, store.SetToken(ctx, "tok"))
	require.NoError(t, store.SetUserInfo(ctx, &entities.UserInfo{UserID: 21, StaffID: 21, Role: entities.RoleStaff}))

	var sent entities.BlogRequest
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"POST /blog": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
			writeJSON(w, http.StatusCreated, entities.Blog{BlogID: 8, Title: sent.Title, StaffID: sent.StaffID})
		},
		"GET /blog/staff/{staffId}": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "21", r.PathValue("staffId"))
			writeJSON(w, http.StatusOK, []entities.Blog{{BlogID: 8}})
		},
	})
	adapter := NewBlogAdapter(newTestClient(fb, store), store, nil)

	got, err := adapter.Create(ctx, entities.BlogRequest{Title: "Sống khỏe cùng ARV", Content: "Nội dung"})
	require.NoError(t, err)
	assert.Equal(t, int64(21), sent.StaffID)
	assert.Equal(t, int64(8), got.BlogID)

	mine, err := adapter.ListByStaff(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = adapter.Create(ctx, entities.BlogRequest{Title: "", Content: "x"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 1, fb.count("POST /blog"))
}

func TestBlogAdapter_CreateWithoutSession(t *testing.T) {
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"POST /blog": failWith(http.StatusInternalServerError),
	})
	store := newTestSession(t)
	adapter := NewBlogAdapter(newTestClient(fb, store), store, nil)

	_, err := adapter.Create(context.Background(), entities.BlogRequest{Title: "a", Content: "b"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, 0, fb.total())
}

func TestEducationContentAdapter_Search(t *testing.T) {
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /education-content/search": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "PrEP", r.URL.Query().Get("keyword"))
			writeJSON(w, http.StatusOK, []entities.EducationContent{{PostID: 3, Title: "Dự phòng trước phơi nhiễm (PrEP)"}})
		},
	})
	store := newTestSession(t)
	adapter := NewEducationContentAdapter(newTestClient(fb, store), store, nil)

	got, err := adapter.SearchByTitle(context.Background(), "PrEP")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].PostID)
}

func TestDashboardAdapter_RecentActivitiesLimit(t *testing.T) {
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /admin/dashboard/recent-activities": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			writeJSON(w, http.StatusOK, []entities.Activity{{ID: 1}, {ID: 2}})
		},
	})
	adapter := NewDashboardAdapter(newTestClient(fb, newTestSession(t)), NewFallbackPolicy(true, nil))

	got, err := adapter.RecentActivities(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMedicalRecordAdapter_RejectsNegativeLabValues(t *testing.T) {
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"POST /medical-record": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, entities.MedicalRecord{MedicalRecordID: 5, CD4Count: 650})
		},
	})
	adapter := NewMedicalRecordAdapter(newTestClient(fb, newTestSession(t)))
	ctx := context.Background()

	_, err := adapter.Create(ctx, entities.MedicalRecordRequest{CustomerID: 1, CD4Count: -1})
	assert.True(t, apperrors.IsValidation(err))
	_, err = adapter.Create(ctx, entities.MedicalRecordRequest{CustomerID: 1, ViralLoad: -20})
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, fb.total())

	got, err := adapter.Create(ctx, entities.MedicalRecordRequest{CustomerID: 1, DoctorID: 2, CD4Count: 650, ViralLoad: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.MedicalRecordID)
}

func TestTreatmentPlanAdapter_Create(t *testing.T) {
	var sent entities.TreatmentPlanRequest
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"POST /treatment-plan": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
			writeJSON(w, http.StatusCreated, entities.TreatmentPlan{PlanID: 4, ARVRegimen: sent.ARVRegimen, Status: sent.Status})
		},
	})
	adapter := NewTreatmentPlanAdapter(newTestClient(fb, newTestSession(t)))
	ctx := context.Background()

	_, err := adapter.Create(ctx, entities.TreatmentPlanRequest{MedicalRecordID: 5, ARVRegimen: "XYZ"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, fb.total())

	got, err := adapter.Create(ctx, entities.TreatmentPlanRequest{MedicalRecordID: 5, DoctorID: 2, ARVRegimen: "TDF/3TC/DTG", StartDate: "2024-07-01"})
	require.NoError(t, err)
	assert.Equal(t, entities.TreatmentPlanStatusActive, sent.Status)
	assert.Equal(t, int64(4), got.PlanID)
}

func TestAuthAdapter_LoginStoresSession(t *testing.T) {
	store := newTestSession(t)
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"POST /api/login": func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, entities.LoginResponse{Token: "fresh", UserID: 21, Role: entities.RoleStaff, FullName: "Nguyễn Thị Lan"})
		},
		"GET /api/profile": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer fresh", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, entities.UserInfo{UserID: 21, FullName: "Nguyễn Thị Lan"})
		},
	})
	adapter := NewAuthAdapter(newTestClient(fb, store), store)
	ctx := context.Background()

	_, err := adapter.Login(ctx, entities.LoginRequest{Username: "lan", Password: "secret1"})
	require.NoError(t, err)

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	info, err := store.UserInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(21), info.StaffID)

	profile, err := adapter.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Thị Lan", profile.FullName)

	require.NoError(t, adapter.Logout(ctx))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestAuthAdapter_LoginFailureKeepsSession(t *testing.T) {
	store := newTestSession(t)
	require.NoError(t, store.SetToken(context.Background(), "old"))
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"POST /api/login": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Sai tên đăng nhập hoặc mật khẩu"})
		},
	})
	adapter := NewAuthAdapter(newTestClient(fb, store), store)

	_, err := adapter.Login(context.Background(), entities.LoginRequest{Username: "lan", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "Sai tên đăng nhập hoặc mật khẩu", err.Error())
	assert.True(t, apperrors.IsUnauthorized(err))

	token, _ := store.Token(context.Background())
	assert.Equal(t, "old", token)
}

func TestUploadAdapter(t *testing.T) {
	fb := newFakeBackend(t, map[string]http.HandlerFunc{
		"POST /upload/avatar": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			file, header, err := r.FormFile("avatar")
			require.NoError(t, err)
			defer file.Close()
			data, _ := io.ReadAll(file)
			assert.Equal(t, "me.png", header.Filename)
			assert.Equal(t, "png-bytes", string(data))
			writeJSON(w, http.StatusCreated, entities.UploadedFile{FileID: "f1", Type: entities.FileTypeAvatar})
		},
		"POST /upload/document": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			_, _, err := r.FormFile("document")
			require.NoError(t, err)
			assert.Equal(t, "document", r.FormValue("type"))
			writeJSON(w, http.StatusCreated, entities.UploadedFile{FileID: "f2"})
		},
		"POST /upload/medical-record/{recordId}": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "5", r.PathValue("recordId"))
			_, _, err := r.FormFile("file")
			require.NoError(t, err)
			writeJSON(w, http.StatusCreated, entities.UploadedFile{FileID: "f3"})
		},
		"GET /upload/files/{fileId}": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Disposition", `attachment; filename="ket-qua.pdf"`)
			_, _ = w.Write([]byte("%PDF"))
		},
		"DELETE /upload/files/{fileId}": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})
	adapter := NewUploadAdapter(newTestClient(fb, newTestSession(t)))
	ctx := context.Background()

	avatar, err := adapter.UploadAvatar(ctx, entities.FileUpload{FileName: "me.png", Content: strings.NewReader("png-bytes")})
	require.NoError(t, err)
	assert.Equal(t, "f1", avatar.FileID)

	doc, err := adapter.UploadDocument(ctx, entities.FileUpload{FileName: "cv.pdf", Content: strings.NewReader("pdf")}, "")
	require.NoError(t, err)
	assert.Equal(t, "f2", doc.FileID)

	attached, err := adapter.UploadMedicalRecordFile(ctx, 5, entities.FileUpload{FileName: "xn.pdf", Content: strings.NewReader("x")})
	require.NoError(t, err)
	assert.Equal(t, "f3", attached.FileID)

	blob, err := adapter.Download(ctx, "f2")
	require.NoError(t, err)
	assert.Equal(t, "ket-qua.pdf", blob.FileName)
	assert.Equal(t, "application/pdf", blob.ContentType)
	assert.Equal(t, []byte("%PDF"), blob.Data)

	require.NoError(t, adapter.Delete(ctx, "f2"))

	_, err = adapter.UploadAvatar(ctx, entities.FileUpload{FileName: "none"})
	assert.True(t, apperrors.IsValidation(err))
}
