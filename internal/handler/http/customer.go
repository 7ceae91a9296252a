// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/internal/service"
	"github.com/MKhiriev/go-customer-portal/internal/utils"
	"github.com/MKhiriev/go-customer-portal/models"
)

const (
	msgInvalidJSON     = "Invalid JSON was passed"
	msgPasswordTooLong = "Password must be at most 72 bytes long"
)

// Per-endpoint error tables. The first matching kind wins; anything
// unmatched falls back to statusFromError.
var (
	loginErrors = []errorResponse{
		{service.ErrValidation, http.StatusBadRequest, "The password and email are required"},
		{service.ErrNotFound, http.StatusNotFound, "Email not registered"},
		{service.ErrUnauthorized, http.StatusNotFound, "Invalid Credentials"},
	}

	registerErrors = []errorResponse{
		{service.ErrPasswordTooLong, http.StatusBadRequest, msgPasswordTooLong},
		{service.ErrValidation, http.StatusPaymentRequired, "These params are required"},
		{service.ErrConflict, http.StatusUnauthorized, "Email already exists"},
	}

	getInfoErrors = []errorResponse{
		{service.ErrNotFound, http.StatusNotFound, "Customer not found"},
	}

	updatePasswordErrors = []errorResponse{
		{service.ErrPasswordTooLong, http.StatusBadRequest, msgPasswordTooLong},
		{service.ErrValidation, http.StatusBadRequest, "The current and new passwords are required"},
		{service.ErrNotFound, http.StatusNotFound, "Customer not found"},
		{service.ErrUnauthorized, http.StatusUnauthorized, "Incorrect Password"},
	}

	updateProfileErrors = []errorResponse{
		{service.ErrValidation, http.StatusBadRequest, "Invalid profile data"},
		{service.ErrConflict, http.StatusBadRequest, "Email is already in use"},
		{service.ErrNotFound, http.StatusNotFound, "Customer not found"},
	}

	deleteProfileErrors = []errorResponse{
		{service.ErrNotFound, http.StatusNotFound, "Account not found"},
		{service.ErrConflict, http.StatusBadRequest, "You cannot delete your account because you have a pending package"},
	}
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.AccountService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err, loginErrors)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Message:  "User logged successfully",
		Token:    result.Token.SignedString,
		Customer: result.Profile,
	}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	customer, err := h.services.AccountService.Register(ctx, request)
	if err != nil {
		writeError(w, r, err, registerErrors)
		return
	}

	log.Info().Str("customer_id", customer.ID).Msg("customer registered")
	utils.WriteJSON(w, models.RegisterResponse{
		Message:  "Customer registered successfully",
		Customer: customer,
	}, http.StatusCreated)
}

func (h *Handler) getInfo(w http.ResponseWriter, r *http.Request) {
	customerID, _ := utils.GetCustomerIDFromContext(r.Context())

	profile, err := h.services.AccountService.GetProfile(r.Context(), customerID)
	if err != nil {
		writeError(w, r, err, getInfoErrors)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

// getPackages answers 202 with a message instead of an empty array when the
// customer has no packages.
func (h *Handler) getPackages(w http.ResponseWriter, r *http.Request) {
	customerID, _ := utils.GetCustomerIDFromContext(r.Context())

	packages, err := h.services.AccountService.ListPackages(r.Context(), customerID)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	if len(packages) == 0 {
		utils.WriteMessage(w, "You don't have packages", http.StatusAccepted)
		return
	}

	utils.WriteJSON(w, packages, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	customerID, _ := utils.GetCustomerIDFromContext(ctx)

	var change models.PasswordChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.UpdatePassword(ctx, customerID, change); err != nil {
		writeError(w, r, err, updatePasswordErrors)
		return
	}

	utils.WriteMessage(w, "Password was updated", http.StatusCreated)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	customerID, _ := utils.GetCustomerIDFromContext(ctx)

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	profile, err := h.services.AccountService.UpdateProfile(ctx, customerID, update)
	if err != nil {
		writeError(w, r, err, updateProfileErrors)
		return
	}

	utils.WriteJSON(w, models.UpdateProfileResponse{
		Message:  "Account updated",
		Customer: profile,
	}, http.StatusOK)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	customerID, _ := utils.GetCustomerIDFromContext(r.Context())

	if err := h.services.AccountService.DeleteAccount(r.Context(), customerID); err != nil {
		writeError(w, r, err, deleteProfileErrors)
		return
	}

	utils.WriteMessage(w, "Account deleted successfully", http.StatusOK)
}
