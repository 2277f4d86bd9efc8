package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name FPLProvider --dir ../usecase --output usecase --outpkg usecasemock --filename fpl_provider_mock.go
