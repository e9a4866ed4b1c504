package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	BoardRepoName        RepositoryName = "board"
	ProductRepoName      RepositoryName = "product"
	OrderRepoName        RepositoryName = "order"
	VerificationRepoName RepositoryName = "verification"
)
