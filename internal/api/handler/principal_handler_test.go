package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/v4health/clinic-api/internal/core/domain"
	"github.com/v4health/clinic-api/internal/core/ports"
)

type stubRegistrar[P domain.Principal] struct {
	registerFn func(ctx context.Context, p P, password string) (*ports.Registration[P], error)
	calls      int
}

func (s *stubRegistrar[P]) Register(ctx context.Context, p P, password string) (*ports.Registration[P], error) {
	s.calls++
	return s.registerFn(ctx, p, password)
}

func succeed[P domain.Principal](id int64) *stubRegistrar[P] {
	return &stubRegistrar[P]{registerFn: func(_ context.Context, p P, _ string) (*ports.Registration[P], error) {
		p.SetPasswordHash("$2a$10$notreal")
		p.SetCreated(id, fixedTime)
		return &ports.Registration[P]{Record: p, Token: "signed.jwt.token"}, nil
	}}
}

func newPrincipalHandler(staff *stubRegistrar[*domain.Staff], doctors *stubRegistrar[*domain.Doctor], patients *stubRegistrar[*domain.Patient], files *stubFiles) *PrincipalHandler {
	if staff == nil {
		staff = succeed[*domain.Staff](1)
	}
	if doctors == nil {
		doctors = succeed[*domain.Doctor](1)
	}
	if patients == nil {
		patients = succeed[*domain.Patient](1)
	}
	if files == nil {
		files = &stubFiles{name: "1700000000000-uuid.png"}
	}
	return NewPrincipalHandler(staff, doctors, patients, files)
}

func TestCreateStaff_Success(t *testing.T) {
	e := newEcho()
	var gotPassword string
	staff := succeed[*domain.Staff](7)
	inner := staff.registerFn
	staff.registerFn = func(ctx context.Context, s *domain.Staff, password string) (*ports.Registration[*domain.Staff], error) {
		gotPassword = password
		return inner(ctx, s, password)
	}
	h := newPrincipalHandler(staff, nil, nil, nil)

	c, rec := jsonContext(e, "/v4health/v4_staffs", `{"name":"John Doe","username":"jdoe","password":"s3cret"}`)
	if err := h.CreateStaff(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotPassword != "s3cret" {
		t.Errorf("password not forwarded, got %q", gotPassword)
	}

	body := decode(t, rec)
	if body["message"] != "Data inserted successfully" || body["token"] != "signed.jwt.token" {
		t.Fatalf("unexpected body: %v", body)
	}
	record := body["record"].(map[string]any)
	if record["username"] != "jdoe" || record["id"] != float64(7) {
		t.Errorf("unexpected record: %v", record)
	}
	if _, leaked := record["password"]; leaked {
		t.Error("password hash must never be serialized")
	}
	if _, leaked := record["PasswordHash"]; leaked {
		t.Error("password hash must never be serialized")
	}
}

func TestCreateStaff_FormBody(t *testing.T) {
	e := newEcho()
	h := newPrincipalHandler(nil, nil, nil, nil)

	c, rec := multipartContext(t, e, "/v4health/v4_staffs", map[string]string{"name": "John", "username": "jdoe", "password": "pw"})
	if err := h.CreateStaff(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCreateStaff_MissingPassword(t *testing.T) {
	e := newEcho()
	staff := succeed[*domain.Staff](1)
	h := newPrincipalHandler(staff, nil, nil, nil)

	c, _ := jsonContext(e, "/v4health/v4_staffs", `{"name":"John","username":"jdoe"}`)
	requireValidation(t, h.CreateStaff(c), http.StatusBadRequest, "password")
	if staff.calls != 0 {
		t.Error("invalid request must not reach the guard")
	}
}

func TestCreateStaff_ConflictPassesThrough(t *testing.T) {
	e := newEcho()
	staff := &stubRegistrar[*domain.Staff]{registerFn: func(context.Context, *domain.Staff, string) (*ports.Registration[*domain.Staff], error) {
		return nil, &domain.ConflictError{Kind: domain.KindStaff, Key: domain.UniqueKey{Username: "jdoe"}}
	}}
	h := newPrincipalHandler(staff, nil, nil, nil)

	c, rec := jsonContext(e, "/v4health/v4_staffs", `{"name":"John","username":"jdoe","password":"pw"}`)
	err := h.CreateStaff(c)
	if !errors.Is(err, domain.ErrPrincipalExists) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Error("handler must leave rendering to the error handler")
	}
}

func TestCreateDoctor_WithLegacyImageField(t *testing.T) {
	e := newEcho()
	var got *domain.Doctor
	doctors := succeed[*domain.Doctor](3)
	inner := doctors.registerFn
	doctors.registerFn = func(ctx context.Context, d *domain.Doctor, pw string) (*ports.Registration[*domain.Doctor], error) {
		got = d
		return inner(ctx, d, pw)
	}
	files := &stubFiles{name: "1700000000000-abc.png"}
	h := newPrincipalHandler(nil, doctors, nil, files)

	c, rec := multipartContext(t, e, "/v4health/doctors", map[string]string{
		"name":          "Gregory House",
		"username":      "house",
		"password":      "vicodin",
		"email":         "house@clinic.test",
		"other_contact": "5551234",
		"experience":    "20",
		"status":        "1",
	}, filePart{field: "imgage", name: "house.png", contentType: "image/png", content: []byte("png")})

	if err := h.CreateDoctor(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if files.meta.Field != "imgage" || files.meta.OriginalName != "house.png" || files.meta.ContentType != "image/png" {
		t.Errorf("unexpected upload meta: %+v", files.meta)
	}
	if got.Image == nil || *got.Image != files.name {
		t.Errorf("expected image filename on record, got %v", got.Image)
	}
	if len(files.deleted) != 0 {
		t.Errorf("registered portrait must be kept, deleted = %v", files.deleted)
	}
	if got.OtherContact == nil || *got.OtherContact != "5551234" || got.Experience != 20 || got.Status != 1 {
		t.Errorf("unexpected doctor: %+v", got)
	}

	body := decode(t, rec)
	if body["message"] != "Doctor added successfully" {
		t.Errorf("unexpected message %v", body["message"])
	}
}

func TestCreateDoctor_NoImage(t *testing.T) {
	e := newEcho()
	files := &stubFiles{}
	h := newPrincipalHandler(nil, nil, nil, files)

	c, rec := jsonContext(e, "/v4health/doctors",
		`{"name":"Lisa Cuddy","username":"cuddy","password":"pw","email":"cuddy@clinic.test","experience":15,"status":1}`)
	if err := h.CreateDoctor(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if files.calls != 0 {
		t.Error("no file storage call expected without an image")
	}
	record := decode(t, rec)["record"].(map[string]any)
	if record["image"] != nil || record["other_contact"] != nil {
		t.Errorf("expected null image and other_contact, got %v", record)
	}
}

func TestCreateDoctor_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"bad email", `{"name":"a","username":"b","password":"c","email":"nope","experience":1,"status":1}`, "email"},
		{"non-integer experience", `{"name":"a","username":"b","password":"c","email":"a@b.test","experience":"ten","status":1}`, "experience"},
		{"non-numeric contact", `{"name":"a","username":"b","password":"c","email":"a@b.test","other_contact":"call me","experience":1,"status":1}`, "other_contact"},
		{"missing status", `{"name":"a","username":"b","password":"c","email":"a@b.test","experience":1}`, "status"},
		{"username over 255", `{"name":"a","username":"` + strings.Repeat("u", 300) + `","password":"c","email":"a@b.test","experience":1,"status":1}`, "username"},
		{"name over 255", `{"name":"` + strings.Repeat("n", 256) + `","username":"b","password":"c","email":"a@b.test","experience":1,"status":1}`, "name"},
		{"email over 255", `{"name":"a","username":"b","password":"c","email":"` + strings.Repeat("e", 250) + `@b.test","experience":1,"status":1}`, "email"},
		{"contact over 32", `{"name":"a","username":"b","password":"c","email":"a@b.test","other_contact":"` + strings.Repeat("5", 40) + `","experience":1,"status":1}`, "other_contact"},
		{"experience beyond int32", `{"name":"a","username":"b","password":"c","email":"a@b.test","experience":"99999999999","status":1}`, "experience"},
		{"negative status", `{"name":"a","username":"b","password":"c","email":"a@b.test","experience":1,"status":-1}`, "status"},
		{"status beyond int32", `{"name":"a","username":"b","password":"c","email":"a@b.test","experience":1,"status":2147483648}`, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho()
			doctors := succeed[*domain.Doctor](1)
			h := newPrincipalHandler(nil, doctors, nil, nil)

			c, _ := jsonContext(e, "/v4health/doctors", tt.body)
			requireValidation(t, h.CreateDoctor(c), http.StatusBadRequest, tt.field)
			if doctors.calls != 0 {
				t.Error("invalid request must not reach the guard")
			}
		})
	}
}

func TestCreatePatient_RejectedImage(t *testing.T) {
	e := newEcho()
	patients := succeed[*domain.Patient](1)
	files := &stubFiles{err: domain.ErrUnsupportedUpload}
	h := newPrincipalHandler(nil, nil, patients, files)

	c, _ := multipartContext(t, e, "/v4health/patients", map[string]string{
		"name": "Jane", "username": "jane", "password": "pw", "email": "jane@clinic.test", "status": "1",
	}, filePart{field: "image", name: "cv.pdf", contentType: "application/pdf", content: []byte("%PDF")})

	if err := h.CreatePatient(c); !errors.Is(err, domain.ErrUnsupportedUpload) {
		t.Fatalf("expected ErrUnsupportedUpload, got %v", err)
	}
	if patients.calls != 0 {
		t.Error("registration must not run when the image is rejected")
	}
}

func TestCreateDoctor_ConflictDiscardsImage(t *testing.T) {
	e := newEcho()
	doctors := &stubRegistrar[*domain.Doctor]{registerFn: func(context.Context, *domain.Doctor, string) (*ports.Registration[*domain.Doctor], error) {
		return nil, &domain.ConflictError{Kind: domain.KindDoctor, Key: domain.UniqueKey{Username: "house"}}
	}}
	files := &stubFiles{name: "1700000000000-abc.png"}
	h := newPrincipalHandler(nil, doctors, nil, files)

	c, _ := multipartContext(t, e, "/v4health/doctors", map[string]string{
		"name": "Gregory House", "username": "house", "password": "pw",
		"email": "house@clinic.test", "experience": "20", "status": "1",
	}, filePart{field: "image", name: "house.png", contentType: "image/png", content: []byte("png")})

	if err := h.CreateDoctor(c); !errors.Is(err, domain.ErrPrincipalExists) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if len(files.deleted) != 1 || files.deleted[0] != files.name {
		t.Errorf("expected %q to be discarded, deleted = %v", files.name, files.deleted)
	}
}

func TestCreatePatient_StorageErrorDiscardsImage(t *testing.T) {
	e := newEcho()
	patients := &stubRegistrar[*domain.Patient]{registerFn: func(context.Context, *domain.Patient, string) (*ports.Registration[*domain.Patient], error) {
		return nil, domain.NewStorageError("insert patient", errors.New("db gone"))
	}}
	// a failed delete must not mask the registration error
	files := &stubFiles{name: "1700000000000-def.png", deleteErr: errors.New("disk gone")}
	h := newPrincipalHandler(nil, nil, patients, files)

	c, _ := multipartContext(t, e, "/v4health/patients", map[string]string{
		"name": "Jane", "username": "jane", "password": "pw", "email": "jane@clinic.test", "status": "1",
	}, filePart{field: "image", name: "jane.png", contentType: "image/png", content: []byte("png")})

	if err := h.CreatePatient(c); !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if len(files.deleted) != 1 || files.deleted[0] != files.name {
		t.Errorf("expected %q to be discarded, deleted = %v", files.name, files.deleted)
	}
}

func TestCreatePatient_FailureWithoutImageDeletesNothing(t *testing.T) {
	e := newEcho()
	patients := &stubRegistrar[*domain.Patient]{registerFn: func(context.Context, *domain.Patient, string) (*ports.Registration[*domain.Patient], error) {
		return nil, &domain.ConflictError{Kind: domain.KindPatient, Key: domain.UniqueKey{Username: "jane"}}
	}}
	files := &stubFiles{}
	h := newPrincipalHandler(nil, nil, patients, files)

	c, _ := jsonContext(e, "/v4health/patients", `{"name":"Jane","username":"jane","password":"pw","email":"jane@clinic.test","status":"0"}`)
	if err := h.CreatePatient(c); !errors.Is(err, domain.ErrPrincipalExists) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if len(files.deleted) != 0 {
		t.Errorf("nothing was saved, deleted = %v", files.deleted)
	}
}

func TestCreatePatient_Success(t *testing.T) {
	e := newEcho()
	h := newPrincipalHandler(nil, nil, nil, nil)

	c, rec := jsonContext(e, "/v4health/patients", `{"name":"Jane","username":"jane","password":"pw","email":"jane@clinic.test","status":"0"}`)
	if err := h.CreatePatient(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if msg := decode(t, rec)["message"]; msg != "Patient added successfully" {
		t.Errorf("unexpected message %v", msg)
	}
}

var fixedTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestCreateStaff_UsernameTooLong(t *testing.T) {
	e := newEcho()
	staff := succeed[*domain.Staff](1)
	h := newPrincipalHandler(staff, nil, nil, nil)

	c, _ := jsonContext(e, "/v4health/v4_staffs", `{"name":"J","username":"`+strings.Repeat("j", 256)+`","password":"pw"}`)
	requireValidation(t, h.CreateStaff(c), http.StatusBadRequest, "username")
	if staff.calls != 0 {
		t.Error("oversized username must not reach the guard")
	}
}

func TestCreatePatient_LimitsMatchColumns(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"contact over 32", `{"name":"a","username":"b","password":"c","email":"a@b.test","other_contact":"` + strings.Repeat("1", 33) + `","status":1}`, "other_contact"},
		{"status beyond int32", `{"name":"a","username":"b","password":"c","email":"a@b.test","status":"99999999999"}`, "status"},
		{"username over 255", `{"name":"a","username":"` + strings.Repeat("p", 256) + `","password":"c","email":"a@b.test","status":1}`, "username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho()
			patients := succeed[*domain.Patient](1)
			h := newPrincipalHandler(nil, nil, patients, nil)

			c, _ := jsonContext(e, "/v4health/patients", tt.body)
			requireValidation(t, h.CreatePatient(c), http.StatusBadRequest, tt.field)
			if patients.calls != 0 {
				t.Error("invalid request must not reach the guard")
			}
		})
	}
}

func TestCreateDoctor_AtColumnLimits(t *testing.T) {
	e := newEcho()
	doctors := succeed[*domain.Doctor](1)
	h := newPrincipalHandler(nil, doctors, nil, nil)

	body := `{"name":"a","username":"` + strings.Repeat("u", 255) + `","password":"c","email":"a@b.test",` +
		`"other_contact":"` + strings.Repeat("5", 32) + `","experience":2147483647,"status":1}`
	c, rec := jsonContext(e, "/v4health/doctors", body)
	if err := h.CreateDoctor(c); err != nil {
		t.Fatalf("values at the column limits must pass: %v", err)
	}
	if rec.Code != http.StatusCreated || doctors.calls != 1 {
		t.Errorf("expected 201 and one guard call, got %d/%d", rec.Code, doctors.calls)
	}
}
