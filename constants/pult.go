package constants

const (
	DefaultAPIURL = "https://gql.api.pult.com/v1/graphql"
	PultOrigin    = "https://app.pult.com"
	PultReferer   = PultOrigin + "/"
	BrowserAgent  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

	OperationTrackPolls   = "GetTrackPollsByRange"
	OperationTrackOffices = "GetTrackOffices"

	DateLayout = "2006-01-02"
)
