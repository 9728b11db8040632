package appointment

import (
	"context"
	"errors"
	"testing"

	"opdflow/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeApptRepo struct {
	appts   map[string]*models.Appointment
	created []*models.Appointment
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appts: map[string]*models.Appointment{}}
}

func (r *fakeApptRepo) Create(_ context.Context, appt *models.Appointment) error {
	if appt.ID == "" {
		appt.ID = "appt-1"
	}
	cp := *appt
	r.appts[appt.ID] = &cp
	r.created = append(r.created, &cp)
	return nil
}

func (r *fakeApptRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	appt, ok := r.appts[id]
	if !ok {
		return nil, nil
	}
	cp := *appt
	return &cp, nil
}

func (r *fakeApptRepo) UpdateStatus(_ context.Context, id string, status models.AppointmentStatus) error {
	appt, ok := r.appts[id]
	if !ok {
		return errors.New("no document matched")
	}
	appt.Status = status
	return nil
}

func (r *fakeApptRepo) SetPayment(_ context.Context, id string, status models.PaymentStatus, paymentID string) error {
	appt, ok := r.appts[id]
	if !ok {
		return errors.New("no document matched")
	}
	appt.PaymentStatus = status
	appt.PaymentID = paymentID
	return nil
}

func (r *fakeApptRepo) GetByPatient(_ context.Context, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) GetByDoctor(_ context.Context, doctorID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) CountByPatient(context.Context, string) (int64, error) { return 0, nil }
func (r *fakeApptRepo) CountUpcomingByPatient(context.Context, string, string) (int64, error) {
	return 0, nil
}
func (r *fakeApptRepo) DistinctDoctors(context.Context, string) (int, error) { return 0, nil }
func (r *fakeApptRepo) CountByDoctor(context.Context, string) (int64, error) { return 0, nil }
func (r *fakeApptRepo) CountUpcomingByDoctor(context.Context, string, string) (int64, error) {
	return 0, nil
}
func (r *fakeApptRepo) DistinctPatients(context.Context, string) (int, error) { return 0, nil }

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func newFakeDoctorRepo(docs ...*models.Doctor) *fakeDoctorRepo {
	r := &fakeDoctorRepo{doctors: map[string]*models.Doctor{}}
	for _, d := range docs {
		r.doctors[d.ID] = d
	}
	return r
}

func (r *fakeDoctorRepo) Create(doctor *models.Doctor) error {
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	return r.doctors[id], nil
}

func (r *fakeDoctorRepo) GetByUserID(userID string) (*models.Doctor, error) {
	for _, d := range r.doctors {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) GetActive(string) ([]models.Doctor, error) { return nil, nil }

func (r *fakeDoctorRepo) UpdateSetDocument(string, bson.M) error { return nil }

type fakeMeetings struct {
	link string
}

func (m *fakeMeetings) AllocateLink() string { return m.link }

type fakeNotifier struct {
	pushes []string
}

func (n *fakeNotifier) SendUserPush(_ context.Context, userID, title, _ string, _ map[string]string) error {
	n.pushes = append(n.pushes, title)
	return nil
}

func (n *fakeNotifier) SendReminder(context.Context, models.Appointment) error { return nil }

type fakeReminders struct {
	enqueued []models.Appointment
}

func (r *fakeReminders) EnqueueReminder(appt models.Appointment) error {
	r.enqueued = append(r.enqueued, appt)
	return nil
}

func newService(repo *fakeApptRepo, doctors *fakeDoctorRepo) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo:       repo,
		DoctorRepo: doctors,
		Meetings:   &fakeMeetings{link: "https://meet.example.com/room-1"},
	}
}

func booking() models.BookingInput {
	return models.BookingInput{
		DoctorID:     "doc-1",
		PatientName:  "Asha Verma",
		PatientEmail: "asha@example.com",
		PatientPhone: "9876543210",
		Date:         "2025-07-01",
		Time:         "09:30",
		Reason:       "Fever",
	}
}

func seededDoctor() *models.Doctor {
	return &models.Doctor{ID: "doc-1", UserID: "user-doc-1", Specialization: "Cardiology"}
}

func TestCreateStartsPending(t *testing.T) {
	repo := newFakeApptRepo()
	svc := newService(repo, newFakeDoctorRepo(seededDoctor()))

	appt, err := svc.Create(context.Background(), "patient-1", booking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.Status != models.StatusPending {
		t.Fatalf("expected status pending, got %s", appt.Status)
	}
	if appt.PaymentStatus != models.PaymentPending {
		t.Fatalf("expected paymentStatus pending, got %s", appt.PaymentStatus)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(repo.created))
	}
	if repo.created[0].Status != models.StatusPending {
		t.Fatalf("persisted record status: expected pending, got %s", repo.created[0].Status)
	}
}

func TestCreateMeetingLinkByType(t *testing.T) {
	repo := newFakeApptRepo()
	svc := newService(repo, newFakeDoctorRepo(seededDoctor()))

	in := booking()
	in.Type = models.TypeVideo
	video, err := svc.Create(context.Background(), "patient-1", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if video.MeetingLink != "https://meet.example.com/room-1" {
		t.Fatalf("expected meeting link for video booking, got %q", video.MeetingLink)
	}

	in = booking()
	in.Type = models.TypeInPerson
	inPerson, err := svc.Create(context.Background(), "patient-1", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inPerson.MeetingLink != "" {
		t.Fatalf("expected no meeting link for in-person booking, got %q", inPerson.MeetingLink)
	}
}

func TestCreateVerifiedPaymentMarksPaid(t *testing.T) {
	svc := newService(newFakeApptRepo(), newFakeDoctorRepo(seededDoctor()))

	in := booking()
	in.PaymentID = "pi_123"
	appt, err := svc.Create(context.Background(), "patient-1", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.PaymentStatus != models.PaymentPaid || appt.PaymentID != "pi_123" {
		t.Fatalf("expected paid with pi_123, got %s / %s", appt.PaymentStatus, appt.PaymentID)
	}
}

func TestCreateUnknownDoctorPersistsNothing(t *testing.T) {
	repo := newFakeApptRepo()
	svc := newService(repo, newFakeDoctorRepo())

	_, err := svc.Create(context.Background(), "patient-1", booking())
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected no persisted record, got %d", len(repo.created))
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newService(newFakeApptRepo(), newFakeDoctorRepo(seededDoctor()))

	mutate := []struct {
		name string
		f    func(*models.BookingInput)
	}{
		{"missing doctorId", func(in *models.BookingInput) { in.DoctorID = "" }},
		{"missing patientName", func(in *models.BookingInput) { in.PatientName = "" }},
		{"missing reason", func(in *models.BookingInput) { in.Reason = "" }},
		{"bad date", func(in *models.BookingInput) { in.Date = "01-07-2025" }},
		{"bad time", func(in *models.BookingInput) { in.Time = "9:30 AM" }},
		{"bad type", func(in *models.BookingInput) { in.Type = "phone" }},
	}

	for _, c := range mutate {
		t.Run(c.name, func(t *testing.T) {
			in := booking()
			c.f(&in)
			_, err := svc.Create(context.Background(), "patient-1", in)
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestUpdateStatusLastWriteWins(t *testing.T) {
	repo := newFakeApptRepo()
	svc := newService(repo, newFakeDoctorRepo(seededDoctor()))

	appt, err := svc.Create(context.Background(), "patient-1", booking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), appt.ID, models.StatusConfirmed); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	got, err := svc.UpdateStatus(context.Background(), appt.ID, models.StatusCancelled)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if got.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}
	if repo.appts[appt.ID].Status != models.StatusCancelled {
		t.Fatalf("persisted status: expected cancelled, got %s", repo.appts[appt.ID].Status)
	}
}

func TestUpdateStatusOutsideGraphStillApplied(t *testing.T) {
	repo := newFakeApptRepo()
	svc := newService(repo, newFakeDoctorRepo(seededDoctor()))

	appt, err := svc.Create(context.Background(), "patient-1", booking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.appts[appt.ID].Status = models.StatusCompleted

	// completed has no outgoing transitions, yet the write lands.
	got, err := svc.UpdateStatus(context.Background(), appt.ID, models.StatusPending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.StatusPending {
		t.Fatalf("expected pending, got %s", got.Status)
	}
	if repo.appts[appt.ID].Status != models.StatusPending {
		t.Fatalf("persisted status: expected pending, got %s", repo.appts[appt.ID].Status)
	}
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	svc := newService(newFakeApptRepo(), newFakeDoctorRepo(seededDoctor()))

	_, err := svc.UpdateStatus(context.Background(), "appt-1", "rescheduled")
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	svc := newService(newFakeApptRepo(), newFakeDoctorRepo(seededDoctor()))

	_, err := svc.UpdateStatus(context.Background(), "missing", models.StatusConfirmed)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestConfirmFansOutSideEffects(t *testing.T) {
	repo := newFakeApptRepo()
	notifier := &fakeNotifier{}
	reminders := &fakeReminders{}
	svc := newService(repo, newFakeDoctorRepo(seededDoctor()))
	svc.Notifier = notifier
	svc.Reminders = reminders

	appt, err := svc.Create(context.Background(), "patient-1", booking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), appt.ID, models.StatusConfirmed); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if len(notifier.pushes) != 1 {
		t.Fatalf("expected 1 push, got %d", len(notifier.pushes))
	}
	if len(reminders.enqueued) != 1 {
		t.Fatalf("expected 1 reminder enqueued, got %d", len(reminders.enqueued))
	}
	if reminders.enqueued[0].ID != appt.ID {
		t.Fatalf("reminder carries wrong appointment: %s", reminders.enqueued[0].ID)
	}

	if _, err := svc.UpdateStatus(context.Background(), appt.ID, models.StatusCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if len(notifier.pushes) != 2 {
		t.Fatalf("expected cancellation push, got %d pushes", len(notifier.pushes))
	}
	if len(reminders.enqueued) != 1 {
		t.Fatalf("cancellation must not enqueue a reminder, got %d", len(reminders.enqueued))
	}
}
