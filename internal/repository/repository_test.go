package repository_test

import (
	"context"
	"errors"

	"nsslens/internal/db"
	"nsslens/internal/repository"
	"nsslens/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ContestRepository", func() {
	var (
		repo        *repository.ContestRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewContestRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
			})

			It("should migrate both tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.PhotoSubmission{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{
				FullName: "Jane Roe",
				VitID:    "21BCE1234",
				Email:    "jane@example.edu",
				Password: "hunter2",
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("the insert succeeds", func() {
			It("should persist the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(record.(*repository.User).VitID).To(Equal(user.VitID))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError("insert user: fake error"))
			})
		})
	})

	Describe("UserExists", func() {
		var (
			exists bool
			err    error
		)

		JustBeforeEach(func() {
			exists, err = repo.UserExists(ctx, "21BCE1234", "jane@example.edu")
		})

		When("a user with the VIT ID exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(nil)
			})

			It("should report true after one lookup", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())
				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("vit_id"))
				Expect(value).To(Equal("21BCE1234"))
			})
		})

		When("only the email is taken", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturnsOnCall(0, db.ErrNotFound)
				fakeStorage.GetOneByReturnsOnCall(1, nil)
			})

			It("should report true after both lookups", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeTrue())
				Expect(fakeStorage.GetOneByCallCount()).To(Equal(2))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(1)
				Expect(column).To(Equal("email"))
				Expect(value).To(Equal("jane@example.edu"))
			})
		})

		When("neither the VIT ID nor the email is taken", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should report false", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeFalse())
				Expect(fakeStorage.GetOneByCallCount()).To(Equal(2))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError("get user by vit_id: fake error"))
				Expect(exists).To(BeFalse())
			})
		})
	})

	Describe("CreateSubmission", func() {
		var (
			submission repository.PhotoSubmission
			err        error
		)

		BeforeEach(func() {
			submission = repository.PhotoSubmission{
				FullName:      "Jane Roe",
				VitID:         "21BCE1234",
				PhotoTitle:    "Dawn over the lake",
				Theme:         "Nature",
				PhotoFilename: "dawn.png",
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateSubmission(ctx, submission)
		})

		When("the insert succeeds", func() {
			It("should persist the submission", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.PhotoSubmission{}))
				Expect(record.(*repository.PhotoSubmission).PhotoFilename).To(Equal("dawn.png"))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError("insert photo submission: fake error"))
			})
		})
	})
})
