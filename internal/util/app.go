package util

func GetAppName() string {
	return "assetprep"
}
