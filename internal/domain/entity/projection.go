package entity

// Projection names the columns read for an entity and, per relation,
// the nested projection to preload. Columns must include every key a
// nested relation joins on.
type Projection struct {
	Columns  []string
	Preloads map[string]Projection
}

var programSummaryColumns = []string{"id", "name", "description", "is_active", "start_date", "end_date"}

var clientSummaryColumns = []string{"id", "full_name", "email", "phone"}

var doctorSummaryColumns = []string{"id", "name", "email", "contact", "role"}

var (
	ClientDetail = Projection{
		Columns: []string{"id", "full_name", "email", "phone", "address", "date_of_birth"},
		Preloads: map[string]Projection{
			"Enrollments": {
				Columns: []string{"id", "client_id", "program_id", "enrollment_date", "status"},
				Preloads: map[string]Projection{
					"Program": {Columns: programSummaryColumns},
				},
			},
			"Appointments": {
				Columns: []string{"id", "client_id", "doctor_id", "appointment_date", "description", "status"},
				Preloads: map[string]Projection{
					"Doctor": {Columns: doctorSummaryColumns},
				},
			},
		},
	}

	UserDetail = Projection{
		Columns: []string{"id", "name", "email", "contact", "role", "is_active", "created_at"},
		Preloads: map[string]Projection{
			"Appointments": {
				Columns: []string{"id", "doctor_id", "appointment_date", "description", "status"},
			},
			"Enrollments": {
				Columns: []string{"id", "program_id", "enroller_id", "enrollment_date", "status"},
				Preloads: map[string]Projection{
					"Program": {Columns: programSummaryColumns},
				},
			},
		},
	}

	// UserCredentials is the only projection that reads the password hash.
	UserCredentials = Projection{
		Columns: []string{"id", "name", "email", "password", "role", "is_active"},
	}

	ProgramDetail = Projection{
		Columns: programSummaryColumns,
	}

	EnrollmentDetail = Projection{
		Columns: []string{"id", "client_id", "program_id", "enrollment_date", "status"},
		Preloads: map[string]Projection{
			"Client":  {Columns: clientSummaryColumns},
			"Program": {Columns: programSummaryColumns},
		},
	}

	AppointmentDetail = Projection{
		Columns: []string{"id", "client_id", "doctor_id", "appointment_date", "description", "status"},
		Preloads: map[string]Projection{
			"Client": {Columns: clientSummaryColumns},
			"Doctor": {Columns: doctorSummaryColumns},
		},
	}

	AuditLogDetail = Projection{
		Columns: []string{"id", "user_id", "action", "metadata", "created_at"},
		Preloads: map[string]Projection{
			"User": {Columns: []string{"id", "name", "email", "role"}},
		},
	}
)
