package storage

// Keys used in the local store. KeyPrefix groups everything the editor
// owns; the quota-recovery wipe removes all keys carrying it.
const (
	KeyPrefix = "framepeach-"

	KeyProject       = "framepeach-project"
	KeyAutosave      = "framepeach-project-autosave"
	KeyUserAssets    = "framepeach-user-assets"
	KeyUserFolders   = "framepeach-user-folders"
	KeyCurrentFolder = "framepeach-current-folder"
)
