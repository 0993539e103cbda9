package app

import (
	"fmt"

	customerHTTP "github.com/allisson/inventory/internal/customer/http"
	customerRepository "github.com/allisson/inventory/internal/customer/repository"
	customerUseCase "github.com/allisson/inventory/internal/customer/usecase"
	productHTTP "github.com/allisson/inventory/internal/product/http"
	productRepository "github.com/allisson/inventory/internal/product/repository"
	productUseCase "github.com/allisson/inventory/internal/product/usecase"
	userHTTP "github.com/allisson/inventory/internal/user/http"
	userRepository "github.com/allisson/inventory/internal/user/repository"
	userUseCase "github.com/allisson/inventory/internal/user/usecase"
)

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	var err error
	c.userRepoInit.Do(func() {
		c.userRepo, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// ProductRepository returns the product repository based on database driver.
func (c *Container) ProductRepository() (productUseCase.ProductRepository, error) {
	var err error
	c.productRepoInit.Do(func() {
		c.productRepo, err = c.initProductRepository()
		if err != nil {
			c.initErrors["productRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productRepo"]; exists {
		return nil, storedErr
	}
	return c.productRepo, nil
}

// CustomerRepository returns the customer repository based on database driver.
func (c *Container) CustomerRepository() (customerUseCase.CustomerRepository, error) {
	var err error
	c.customerRepoInit.Do(func() {
		c.customerRepo, err = c.initCustomerRepository()
		if err != nil {
			c.initErrors["customerRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["customerRepo"]; exists {
		return nil, storedErr
	}
	return c.customerRepo, nil
}

// UserUseCase returns the user use case.
func (c *Container) UserUseCase() (userUseCase.UserUseCase, error) {
	var err error
	c.userUCInit.Do(func() {
		c.userUC, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUC, nil
}

// ProductUseCase returns the product use case.
func (c *Container) ProductUseCase() (productUseCase.ProductUseCase, error) {
	var err error
	c.productUCInit.Do(func() {
		c.productUC, err = c.initProductUseCase()
		if err != nil {
			c.initErrors["productUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productUseCase"]; exists {
		return nil, storedErr
	}
	return c.productUC, nil
}

// CustomerUseCase returns the customer use case.
func (c *Container) CustomerUseCase() (customerUseCase.CustomerUseCase, error) {
	var err error
	c.customerUCInit.Do(func() {
		c.customerUC, err = c.initCustomerUseCase()
		if err != nil {
			c.initErrors["customerUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["customerUseCase"]; exists {
		return nil, storedErr
	}
	return c.customerUC, nil
}

// UserHandler returns the user HTTP handler.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	var err error
	c.userHandlerInit.Do(func() {
		var useCase userUseCase.UserUseCase
		useCase, err = c.UserUseCase()
		if err != nil {
			c.initErrors["userHandler"] = err
			return
		}
		c.userHandler = userHTTP.NewUserHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.userHandler, nil
}

// ProductHandler returns the product HTTP handler.
func (c *Container) ProductHandler() (*productHTTP.ProductHandler, error) {
	var err error
	c.productHandlerInit.Do(func() {
		var useCase productUseCase.ProductUseCase
		useCase, err = c.ProductUseCase()
		if err != nil {
			c.initErrors["productHandler"] = err
			return
		}
		c.productHandler = productHTTP.NewProductHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productHandler"]; exists {
		return nil, storedErr
	}
	return c.productHandler, nil
}

// CustomerHandler returns the customer HTTP handler.
func (c *Container) CustomerHandler() (*customerHTTP.CustomerHandler, error) {
	var err error
	c.customerHandlerInit.Do(func() {
		var useCase customerUseCase.CustomerUseCase
		useCase, err = c.CustomerUseCase()
		if err != nil {
			c.initErrors["customerHandler"] = err
			return
		}
		c.customerHandler = customerHTTP.NewCustomerHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["customerHandler"]; exists {
		return nil, storedErr
	}
	return c.customerHandler, nil
}

// initUserRepository creates the user repository instance.
func (c *Container) initUserRepository() (userUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProductRepository creates the product repository instance.
func (c *Container) initProductRepository() (productUseCase.ProductRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for product repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return productRepository.NewMySQLProductRepository(db), nil
	case "postgres":
		return productRepository.NewPostgreSQLProductRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCustomerRepository creates the customer repository instance.
func (c *Container) initCustomerRepository() (customerUseCase.CustomerRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for customer repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return customerRepository.NewMySQLCustomerRepository(db), nil
	case "postgres":
		return customerRepository.NewPostgreSQLCustomerRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initUserUseCase creates the user use case with metrics instrumentation.
func (c *Container) initUserUseCase() (userUseCase.UserUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
	}

	useCase := userUseCase.NewUserUseCase(txManager, userRepo, c.PasswordHasher())
	return userUseCase.NewUserUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initProductUseCase creates the product use case with metrics instrumentation.
func (c *Container) initProductUseCase() (productUseCase.ProductUseCase, error) {
	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for product use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for product use case: %w", err)
	}

	useCase := productUseCase.NewProductUseCase(productRepo)
	return productUseCase.NewProductUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initCustomerUseCase creates the customer use case with metrics instrumentation.
func (c *Container) initCustomerUseCase() (customerUseCase.CustomerUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for customer use case: %w", err)
	}

	customerRepo, err := c.CustomerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer repository for customer use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for customer use case: %w", err)
	}

	useCase := customerUseCase.NewCustomerUseCase(txManager, customerRepo)
	return customerUseCase.NewCustomerUseCaseWithMetrics(useCase, businessMetrics), nil
}
