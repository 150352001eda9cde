package service

const (
	MinHomeLoanAge        = 21
	MinHomeLoanIncome     = 30000
	MinCarLoanAge         = 18
	MinCarLoanIncome      = 20000
	MinPersonalLoanAge    = 25
	MinPersonalLoanIncome = 25000
	MaxEducationLoanAge   = 30
	MinBusinessLoanIncome = 40000

	// Matched case-insensitively against the qualification text, so both
	// "Under Graduate" and "post graduate" qualify.
	GraduateToken = "graduate"
)

const (
	MsgUnknownLoanType = "I'm sorry, I couldn't determine the loan type. Please specify if it's for a car, home, education, business, or personal use."

	MsgHomeEligible    = "Excellent! Based on your age and income, you are eligible for a home loan."
	MsgHomeIneligible  = "Sorry, you do not meet the criteria for a home loan. You must be at least 21 years old and have a minimum monthly income of ₹30,000."
	MsgHomeMissingInfo = "To check your home loan eligibility, I need a few more details. What is your age and your monthly income?(e.g., My age is ** and I make ****)"

	MsgCarEligible    = "Great news! You are eligible for a car loan."
	MsgCarIneligible  = "Sorry, you do not meet the criteria for a car loan. You must be at least 18 years old and have a minimum monthly income of ₹20,000."
	MsgCarMissingInfo = "To check your eligibility for a car loan, I need to know your age and monthly income(e.g., My age is ** and I make ****)."

	MsgPersonalEligible    = "Great news! You are eligible for a personal loan."
	MsgPersonalIneligible  = "Sorry, you do not meet the criteria for a personal loan. You must be at least 25 years old and have a minimum monthly income of ₹25,000."
	MsgPersonalMissingInfo = "To check your eligibility for a personal loan, I need to know your age and monthly income(e.g., My age is ** and I make ****)."

	MsgEducationEligible    = "Congratulations! You are eligible for an education loan."
	MsgEducationIneligible  = "Sorry, you do not meet the criteria for an education loan. You must be a graduate and no older than 30."
	MsgEducationMissingInfo = "To check your eligibility for an education loan, I need your age and qualification (e.g.,My age is ** and 'under graduate'or 'post graduate')."

	MsgBusinessEligible    = "Fantastic! You are eligible for a business loan."
	MsgBusinessIneligible  = "Sorry, to be eligible for a business loan, your minimum monthly income must be at least ₹40,000."
	MsgBusinessMissingInfo = "To check your eligibility for a business loan, I need to know your monthly income(e.g., My age is ** and I make ****)."
)
