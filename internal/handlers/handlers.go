package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func SendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

func SendJSONOrLog(w http.ResponseWriter, log *logrus.Logger, v any) {
	if _, err := SendJSON(w, v); err != nil {
		log.WithError(err).Error("failed to send data")
	}
}

func SendMessageOrLog(w http.ResponseWriter, log *logrus.Logger, m string) {
	if _, err := SendJSON(w, map[string]string{"message": m}); err != nil {
		log.WithError(err).WithField("message", m).Error("failed to send message")
	}
}

func SendErrorOrLog(w http.ResponseWriter, log *logrus.Logger, e error) {
	if _, err := SendJSON(w, map[string]string{"error": e.Error()}); err != nil {
		log.WithError(err).Error("failed to send error message")
	}
}
