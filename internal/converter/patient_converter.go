package converter

import (
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

func PatientToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	response := &dto.PatientResponse{
		UserID:                   profile.UserID,
		IdentificationNumber:     profile.IdentificationNumber,
		IdentificationType:       profile.IdentificationType,
		Gender:                   profile.Gender,
		MaritalStatus:            profile.MaritalStatus,
		Occupation:               profile.Occupation,
		ResidenceCity:            profile.ResidenceCity,
		Neighborhood:             profile.Neighborhood,
		InsuranceProvider:        profile.InsuranceProvider,
		AffiliationNumber:        profile.AffiliationNumber,
		AffiliationType:          profile.AffiliationType,
		EmergencyContactName:     profile.EmergencyContactName,
		EmergencyContactPhone:    profile.EmergencyContactPhone,
		EmergencyContactRelation: profile.EmergencyContactRelation,
		MedicalHistory:           profile.MedicalHistory,
		SurgicalHistory:          profile.SurgicalHistory,
		FamilyHistory:            profile.FamilyHistory,
		Allergies:                profile.Allergies,
		CurrentMedications:       profile.CurrentMedications,
		Weight:                   profile.Weight,
		Height:                   profile.Height,
		BloodType:                profile.BloodType,
		AcceptsCommunications:    profile.AcceptsCommunications,
		PrefersWhatsapp:          profile.PrefersWhatsapp,
		PrefersEmail:             profile.PrefersEmail,
		PrefersSMS:               profile.PrefersSMS,
		IsActive:                 profile.IsActive,
		FirstVisit:               profile.FirstVisit,
		AssignedDoctorID:         profile.AssignedDoctorID,
		CreatedAt:                profile.CreatedAt,
		UpdatedAt:                profile.UpdatedAt,
	}

	if !profile.BirthDate.IsZero() {
		response.BirthDate = profile.BirthDate.Format("2006-01-02")
	}

	if profile.User.ID != uuid.Nil {
		response.FirstName = profile.User.FirstName
		response.LastName = profile.User.LastName
		response.Email = profile.User.Email
		response.Phone = profile.User.Phone
	}

	return response
}

func PatientsToResponse(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *PatientToResponse(&profiles[i]))
	}
	return responses
}

// PatientShellFromUser builds the bare response returned when a patient has
// no profile yet.
func PatientShellFromUser(user *entity.User) *dto.PatientResponse {
	return &dto.PatientResponse{
		UserID:     user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Phone:      user.Phone,
		FirstVisit: true,
	}
}
