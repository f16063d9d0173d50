package core_test

import (
	"context"
	"errors"
	"strings"

	"nsslens/internal/core"
	"nsslens/internal/core/fake"
	"nsslens/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Lens", func() {
	var (
		fakeRepo   *fake.Repository
		fakeFiles  *fake.FileStore
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		lens *core.Lens

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeFiles = new(fake.FileStore)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		lens = core.NewLens(fakeLogger, fakeRepo, fakeFiles)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg core.RegisterMessage
			err error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				FullName: "Jane Roe",
				VitID:    "21BCE1234",
				Email:    "jane@example.edu",
				Password: "hunter2",
			}
		})

		JustBeforeEach(func() {
			err = lens.Register(ctx, msg)
		})

		When("the VIT ID and email are fresh", func() {
			BeforeEach(func() {
				fakeRepo.UserExistsReturns(false, nil)
			})

			It("should create exactly one user", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.UserExistsCallCount()).To(Equal(1))
				_, vitID, email := fakeRepo.UserExistsArgsForCall(0)
				Expect(vitID).To(Equal(msg.VitID))
				Expect(email).To(Equal(msg.Email))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user).To(Equal(repository.User{
					FullName: msg.FullName,
					VitID:    msg.VitID,
					Email:    msg.Email,
					Password: msg.Password,
				}))
			})
		})

		When("the VIT ID or email is already registered", func() {
			BeforeEach(func() {
				fakeRepo.UserExistsReturns(true, nil)
			})

			It("should return ErrUserExists and create nothing", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the existence check fails", func() {
			BeforeEach(func() {
				fakeRepo.UserExistsReturns(false, fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError("check existing user: fake error"))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeRepo.UserExistsReturns(false, nil)
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError("create user: fake error"))
			})
		})
	})

	Describe("SubmitPhoto", func() {
		var (
			msg     core.SubmissionMessage
			content *strings.Reader
			err     error
		)

		BeforeEach(func() {
			msg = core.SubmissionMessage{
				FullName:    "Jane Roe",
				VitID:       "21BCE1234",
				PhotoTitle:  "Dawn over the lake",
				Theme:       "Nature",
				Description: "shot at 6am",
				Filename:    "dawn over lake.png",
			}
			content = strings.NewReader("image-bytes")

			fakeFiles.SaveReturns("dawn_over_lake.png", nil)
		})

		JustBeforeEach(func() {
			err = lens.SubmitPhoto(ctx, msg, content)
		})

		When("the file save and insert succeed", func() {
			It("should persist the submission with the stored filename", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeFiles.SaveCallCount()).To(Equal(1))
				name, reader := fakeFiles.SaveArgsForCall(0)
				Expect(name).To(Equal(msg.Filename))
				Expect(reader).To(Equal(content))

				Expect(fakeRepo.CreateSubmissionCallCount()).To(Equal(1))
				_, submission := fakeRepo.CreateSubmissionArgsForCall(0)
				Expect(submission.PhotoFilename).To(Equal("dawn_over_lake.png"))
				Expect(submission.PhotoTitle).To(Equal(msg.PhotoTitle))
				Expect(submission.Theme).To(Equal(msg.Theme))
				Expect(submission.Description).To(Equal(msg.Description))

				Expect(fakeFiles.RemoveCallCount()).To(Equal(0))
			})
		})

		When("the file save fails", func() {
			BeforeEach(func() {
				fakeFiles.SaveReturns("", fakeErr)
			})

			It("should not touch the database", func() {
				Expect(err).To(MatchError("save photo file: fake error"))
				Expect(fakeRepo.CreateSubmissionCallCount()).To(Equal(0))
				Expect(fakeFiles.RemoveCallCount()).To(Equal(0))
			})
		})

		When("the insert fails after the file was written", func() {
			BeforeEach(func() {
				fakeRepo.CreateSubmissionReturns(fakeErr)
			})

			It("should remove the just-written file", func() {
				Expect(err).To(MatchError("save submission: fake error"))

				Expect(fakeFiles.RemoveCallCount()).To(Equal(1))
				Expect(fakeFiles.RemoveArgsForCall(0)).To(Equal("dawn_over_lake.png"))
			})
		})

		When("the insert fails and the cleanup fails too", func() {
			BeforeEach(func() {
				fakeRepo.CreateSubmissionReturns(fakeErr)
				fakeFiles.RemoveReturns(errors.New("remove error"))
			})

			It("should still surface the insert error", func() {
				Expect(err).To(MatchError("save submission: fake error"))
				Expect(fakeFiles.RemoveCallCount()).To(Equal(1))
			})
		})
	})
})
