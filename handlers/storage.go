package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"opdflow/utils"

	"github.com/gin-gonic/gin"
)

const avatarFolder = "doctors/avatars"

// UploadProfileImageHandler handles POST /api/doctors/me/avatar. The image
// lands in Cloudinary and its public ID is recorded on the caller's doctor
// profile.
func (h *UploadHandler) UploadProfileImageHandler(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided")
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save file")
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.Storage.UploadFile(c, tempFilePath, avatarFolder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload file")
		return
	}

	if err := h.DoctorService.SetProfileImage(userID, publicID); err != nil {
		handleServiceError(c, err)
		return
	}

	downloadURL, err := h.Storage.GetDownloadURL(publicID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to construct download URL")
		return
	}
	respondData(c, http.StatusOK, gin.H{"profileImage": publicID, "downloadURL": downloadURL})
}
