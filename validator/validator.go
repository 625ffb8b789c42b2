package validator

import (
	"regexp"
	"time"

	"hotel-admin/constants"
	"hotel-admin/dto"
	"hotel-admin/errors"
	"hotel-admin/utils"
)

// ValidateCandidate valida el cuerpo del chequeo preventivo de conflictos y
// lo convierte en un candidato con fechas a granularidad de día. El rango
// de fechas inválido (entrada >= salida) se rechaza acá, antes de cualquier
// chequeo de solapamiento, y nunca se corrige en silencio.
func ValidateCandidate(req *dto.CandidateRequest) (*dto.ReservationCandidate, error) {
	if req.RoomNumber.Int() <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "El número de habitación es obligatorio", nil)
	}
	if req.CheckIn == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "La fecha de entrada es obligatoria", nil)
	}
	if req.CheckOut == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "La fecha de salida es obligatoria", nil)
	}

	checkIn, err := utils.ParseDay(req.CheckIn)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Formato de fecha de entrada inválido, use AAAA-MM-DD", err)
	}
	checkOut, err := utils.ParseDay(req.CheckOut)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Formato de fecha de salida inválido, use AAAA-MM-DD", err)
	}

	if !checkIn.Before(checkOut) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDateRange, "La fecha de entrada debe ser anterior a la de salida", errors.ErrInvalidDateRange)
	}

	if req.Email != "" && !isValidEmail(req.Email) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidEmail, "Email inválido", nil)
	}
	if req.Phone != "" && !isValidPhone(req.Phone) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidPhone, "Teléfono inválido", nil)
	}

	return &dto.ReservationCandidate{
		RoomNumber: req.RoomNumber.Int(),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		ExcludeID:  req.ExcludeID,
	}, nil
}

// ValidateDateParam valida un parámetro de fecha "AAAA-MM-DD"
func ValidateDateParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "La fecha es obligatoria", nil)
	}
	day, err := utils.ParseDay(s)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Fecha inválida, use el formato AAAA-MM-DD", err)
	}
	return day, nil
}

// ValidateMonthParam valida un parámetro de mes "MM/AAAA"
func ValidateMonthParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "El mes es obligatorio", nil)
	}
	month, err := time.Parse(utils.MonthLayout, s)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Mes inválido, use el formato MM/AAAA", err)
	}
	return month, nil
}

// ValidateTimelineDays verifica que la cantidad de días sea una vista
// permitida del timeline
func ValidateTimelineDays(days int) error {
	for _, v := range constants.TimelineViews {
		if days == v {
			return nil
		}
	}
	return errors.NewAppError(errors.ErrCodeValidation, "La vista debe ser de 7, 15 o 30 días", nil)
}

// isValidEmail verifica que el email sea válido
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone verifica que el teléfono sea válido
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	return phoneRegex.MatchString(phone)
}
