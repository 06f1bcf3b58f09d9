// Package seed loads the demo inmate roster used by the frontend.
package seed

import (
	"context"
	"errors"
	"fmt"

	"inmate-management-backend/internal/service"

	"go.uber.org/zap"
)

func age(n int) *int { return &n }

// Inmates is the demo roster. Every entry passes create validation.
var Inmates = []service.CreateInmateRequest{
	{InmateID: "INM-2025-001", FirstName: "Chinedu", LastName: "Okafor", DateOfBirth: "1988-02-14", Age: age(37), Gender: "Male", Offense: "Armed robbery", AdmissionDate: "2025-01-18", SentenceLength: "8 years", EmergencyContact: "Ngozi Okafor", EmergencyPhone: "08031234567", Notes: "Asthmatic", Status: "Active"},
	{InmateID: "INM-2025-002", FirstName: "Aisha", LastName: "Bello", DateOfBirth: "1992-11-03", Age: age(32), Gender: "Female", Offense: "Fraud", AdmissionDate: "2025-02-08", SentenceLength: "5 years", EmergencyContact: "Yusuf Bello", EmergencyPhone: "08021234567", Notes: "Diabetic", Status: "Active"},
	{InmateID: "INM-2025-003", FirstName: "Emeka", LastName: "Nwosu", DateOfBirth: "1985-06-21", Age: age(39), Gender: "Male", Offense: "Burglary", AdmissionDate: "2025-03-12", SentenceLength: "6 years", EmergencyContact: "Ifeoma Nwosu", EmergencyPhone: "08039876543", Status: "Active"},
	{InmateID: "INM-2025-004", FirstName: "Fatima", LastName: "Abubakar", DateOfBirth: "1990-09-15", Age: age(34), Gender: "Female", Offense: "Drug trafficking", AdmissionDate: "2025-04-05", SentenceLength: "10 years", EmergencyContact: "Hassan Abubakar", EmergencyPhone: "08045678901", Status: "Active"},
	{InmateID: "INM-2025-005", FirstName: "Ibrahim", LastName: "Sani", DateOfBirth: "1982-12-30", Age: age(41), Gender: "Male", Offense: "Assault", AdmissionDate: "2025-02-20", SentenceLength: "4 years", EmergencyContact: "Amina Sani", EmergencyPhone: "08056789012", Notes: "Allergic to penicillin", Status: "Active"},
	{InmateID: "INM-2025-006", FirstName: "Ngozi", LastName: "Eze", DateOfBirth: "1995-07-07", Age: age(28), Gender: "Female", Offense: "Theft", AdmissionDate: "2025-05-10", SentenceLength: "3 years", EmergencyContact: "Chuka Eze", EmergencyPhone: "08067890123", Status: "Active"},
	{InmateID: "INM-2025-007", FirstName: "Tunde", LastName: "Ojo", DateOfBirth: "1987-03-25", Age: age(36), Gender: "Male", Offense: "Forgery", AdmissionDate: "2025-01-30", SentenceLength: "5 years", EmergencyContact: "Bola Ojo", EmergencyPhone: "08078901234", Status: "Active"},
	{InmateID: "INM-2025-008", FirstName: "Maryam", LastName: "Usman", DateOfBirth: "1993-11-18", Age: age(31), Gender: "Female", Offense: "Money laundering", AdmissionDate: "2025-03-22", SentenceLength: "7 years", EmergencyContact: "Sani Usman", EmergencyPhone: "08089012345", Status: "Active"},
	{InmateID: "INM-2025-009", FirstName: "Joseph", LastName: "Okeke", DateOfBirth: "1984-08-09", Age: age(39), Gender: "Male", Offense: "Cybercrime", AdmissionDate: "2025-04-15", SentenceLength: "6 years", EmergencyContact: "Ada Okeke", EmergencyPhone: "08090123456", Status: "Active"},
}

// Result counts what a seeding run did
type Result struct {
	Added   int
	Skipped int
}

// Run registers every roster entry that is not already present. Existing
// inmate IDs are skipped, so the command can be re-run safely.
func Run(ctx context.Context, inmates *service.InmateService, log *zap.Logger) (Result, error) {
	var res Result
	for _, req := range Inmates {
		_, err := inmates.CreateInmate(ctx, req)
		switch {
		case err == nil:
			res.Added++
			log.Info("inmate added", zap.String("inmate_id", req.InmateID))
		case errors.Is(err, service.ErrDuplicate):
			res.Skipped++
			log.Info("inmate already exists, skipping", zap.String("inmate_id", req.InmateID))
		default:
			return res, fmt.Errorf("seed %s: %w", req.InmateID, err)
		}
	}
	return res, nil
}
