package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name FootballDataSource --dir ../usecase --output usecase --outpkg usecasemock --filename football_data_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/team --output domain/team --outpkg teammock --filename repository_mock.go
