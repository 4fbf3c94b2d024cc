package handler

import (
	"net/http"

	"food-delivery-api/internal/model"
)

type UserHandler struct {
	accounts accountService
	stager   stager
}

func NewUserHandler(accounts accountService, stager stager) *UserHandler {
	return &UserHandler{accounts: accounts, stager: stager}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, user, "User fetched successfully")
	return nil
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	var req model.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	updated, err := h.accounts.UpdateDetails(r.Context(), user.ID, req.FullName, req.Email)
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, updated, "User details updated successfully")
	return nil
}

func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	if err := parseMultipart(r); err != nil {
		return err
	}
	defer cleanupMultipart(r)

	avatarPath, err := stageFile(h.stager, r, "avatar")
	if err != nil {
		return err
	}
	defer h.stager.Discard(avatarPath)

	updated, err := h.accounts.UpdateAvatar(r.Context(), user.ID, avatarPath)
	if err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, updated, "User avatar updated successfully")
	return nil
}

func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) error {
	user, err := currentUser(r)
	if err != nil {
		return err
	}

	var req model.UpdatePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	if err := h.accounts.UpdatePassword(r.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	writeSuccess(w, http.StatusOK, nil, "Password updated successfully")
	return nil
}
