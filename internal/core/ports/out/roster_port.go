package out

import (
	"context"

	"github.com/suchimauz/clinic-schedule-viewer/internal/core/domain"
)

// RosterPort - доступ к реестру врачей, пациентов и записей на прием.
// Отсутствие сущности - нормальный исход, а не ошибка: возвращается nil без error.
// Ошибка зарезервирована для сбоев самого хранилища, чтобы in-memory реализацию
// можно было заменить на внешнюю без изменения контракта.
type RosterPort interface {
	GetDoctorByID(ctx context.Context, id string) (*domain.Doctor, error)
	GetPatientByID(ctx context.Context, id string) (*domain.Patient, error)

	// Все врачи в порядке добавления в реестр
	GetAllDoctors(ctx context.Context) ([]domain.Doctor, error)

	// Все записи на прием в исходном порядке
	GetAllAppointments(ctx context.Context) ([]domain.Appointment, error)
}
