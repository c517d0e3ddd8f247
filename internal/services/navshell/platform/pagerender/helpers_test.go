package pagerender

import "github.com/louisbranch/navshell/internal/services/navshell/storage"

func navshellUser(id, username string) storage.User {
	return storage.User{ID: id, Username: username, DisplayName: "Someone"}
}
