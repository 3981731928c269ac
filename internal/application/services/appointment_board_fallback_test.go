package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/hivclinic/internal/adapters/restapi"
	"github.com/zatekoja/hivclinic/internal/adapters/session"
	"github.com/zatekoja/hivclinic/internal/application/services"
	"github.com/zatekoja/hivclinic/internal/domain/entities"
	"github.com/zatekoja/hivclinic/internal/infrastructure/clients/clinicapi"
)

func TestAppointmentBoardService_CancelOnSampleBoard(t *testing.T) {
	var statusPuts atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /appointment/getAllAppointment", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database down", http.StatusInternalServerError)
	})
	mux.HandleFunc("GET /appointment/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entities.Appointment{AppointmentID: 3, Status: entities.AppointmentStatusPending})
	})
	mux.HandleFunc("PUT /appointment/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		statusPuts.Add(1)
		var body entities.UpdateAppointmentStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "3", r.PathValue("id"))
		assert.Equal(t, entities.AppointmentStatusCancelled, body.Status)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entities.Appointment{AppointmentID: 3, Status: entities.AppointmentStatusCancelled})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	client := clinicapi.NewClient(server.URL, store, clinicapi.WithHTTPClient(server.Client()))
	repo := restapi.NewAppointmentAdapter(client, restapi.NewFallbackPolicy(true, nil))
	notifier := &recordingNotifier{}

	svc := services.NewAppointmentBoardService(repo, notifier)
	require.NoError(t, svc.Load(context.Background()))

	// the list failed, so the board holds sample rows with #3 COMPLETED
	var sampled entities.AppointmentStatus
	for _, a := range svc.Board().Appointments {
		if a.AppointmentID == 3 {
			sampled = a.Status
		}
	}
	require.Equal(t, entities.AppointmentStatusCompleted, sampled)

	assert.True(t, svc.Cancel(context.Background(), 3))
	assert.Equal(t, int32(1), statusPuts.Load())
}
