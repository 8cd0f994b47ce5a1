// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./repository.go -destination=../mocks/mock_transactor.go -package=mocks TransactorIface
//go:generate mockgen -typed -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -typed -source=./role.go -destination=../mocks/mock_role_repository.go -package=mocks RoleRepositoryIface
//go:generate mockgen -typed -source=./history.go -destination=../mocks/mock_history_repository.go -package=mocks HistoryRepositoryIface
//go:generate mockgen -typed -source=./officer.go -destination=../mocks/mock_officer_repository.go -package=mocks OfficerRepositoryIface
//go:generate mockgen -typed -source=./member.go -destination=../mocks/mock_member_repository.go -package=mocks MemberRepositoryIface
//go:generate mockgen -typed -source=./affiliate.go -destination=../mocks/mock_affiliate_repository.go -package=mocks AffiliateRepositoryIface
//go:generate mockgen -typed -source=./domain.go -destination=../mocks/mock_domain_repository.go -package=mocks DomainRepositoryIface
//go:generate mockgen -typed -source=./document.go -destination=../mocks/mock_document_repository.go -package=mocks DocumentRepositoryIface
//go:generate mockgen -typed -source=./activity_log.go -destination=../mocks/mock_activity_log_repository.go -package=mocks ActivityLogRepositoryIface
